package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/Agentic-Lead-Gen/internal/dtos"
	"github.com/justsurfingit/Agentic-Lead-Gen/internal/models"
)

// The handler depends on interfaces so tests can swap the real services out.
type QueryTranslator interface {
	ConvertToSearchQuery(ctx context.Context, query string) (string, error)
}

type LeadFetcher interface {
	FetchLeads(ctx context.Context, searchQuery string) ([]models.Lead, error)
}

type LeadStore interface {
	StoreLeads(leads []models.Lead) error
}

type LeadHandler struct {
	LLMService     QueryTranslator
	ScraperService LeadFetcher
	LeadService    LeadStore
}

// NewLeadHandler creates the handler with dependencies
func NewLeadHandler(llm QueryTranslator, scraper LeadFetcher, store LeadStore) *LeadHandler {
	return &LeadHandler{
		LLMService:     llm,
		ScraperService: scraper,
		LeadService:    store,
	}
}

// GenerateLeads is the POST /generate-leads endpoint: translate the free-text
// query, fetch matching LinkedIn profiles, persist them, report the count.
func (h *LeadHandler) GenerateLeads(c *gin.Context) {
	var req dtos.LeadGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	log.Println("Incoming query:", req.Query)

	searchQuery, err := h.LLMService.ConvertToSearchQuery(c.Request.Context(), req.Query)
	if err != nil {
		log.Println("Gemini error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gemini failed"})
		return
	}

	leads, err := h.ScraperService.FetchLeads(c.Request.Context(), searchQuery)
	if err != nil {
		log.Println("Apify error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Apify API failed"})
		return
	}

	if err := h.LeadService.StoreLeads(leads); err != nil {
		log.Println("DB error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, dtos.LeadGenerationResponse{
		GoogleQuery: searchQuery,
		LeadsFound:  len(leads),
	})
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
