package dtos

type LeadGenerationRequest struct {
	Query string `json:"query" binding:"required"`
}

type LeadGenerationResponse struct {
	GoogleQuery string `json:"google_query"`
	LeadsFound  int    `json:"leads_found"`
}
