package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/justsurfingit/Agentic-Lead-Gen/internal/config"
	"github.com/justsurfingit/Agentic-Lead-Gen/internal/models"
)

const apifyActorPath = "/v2/acts/apify~google-search-scraper/run-sync-get-dataset-items"

type ScraperService struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

func NewScraperService(cfg *config.Config) *ScraperService {
	return &ScraperService{
		BaseURL: cfg.ApifyBaseURL,
		Token:   cfg.ApifyToken,
		Client:  &http.Client{},
	}
}

type apifyRunRequest struct {
	Queries          string `json:"queries"`
	MaxPagesPerQuery int    `json:"maxPagesPerQuery"`
}

type apifyPersonalInfo struct {
	JobTitle    *string `json:"jobTitle"`
	CompanyName *string `json:"companyName"`
	Location    *string `json:"location"`
}

type apifyOrganicResult struct {
	URL          string             `json:"url"`
	Title        *string            `json:"title"`
	PersonalInfo *apifyPersonalInfo `json:"personalInfo"`
}

type apifyResultSet struct {
	OrganicResults []apifyOrganicResult `json:"organicResults"`
}

// FetchLeads runs the search query through the Apify Google scraper and maps
// every LinkedIn profile hit into a Lead. Results that are not profile pages
// are dropped; an empty result set is a valid outcome.
func (s *ScraperService) FetchLeads(ctx context.Context, searchQuery string) ([]models.Lead, error) {
	payload, err := json.Marshal(apifyRunRequest{
		Queries:          searchQuery,
		MaxPagesPerQuery: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal apify payload: %w", err)
	}

	endpoint := s.BaseURL + apifyActorPath + "?token=" + url.QueryEscape(s.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build apify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apify request failed: %w", err)
	}
	defer resp.Body.Close()

	log.Println("Apify status:", resp.StatusCode)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("apify returned status %d", resp.StatusCode)
	}

	var results []apifyResultSet
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode apify response: %w", err)
	}

	if len(results) == 0 {
		return []models.Lead{}, nil
	}

	leads := []models.Lead{}
	for _, item := range results[0].OrganicResults {
		if !strings.Contains(item.URL, "linkedin.com/in") {
			continue
		}

		lead := models.Lead{
			Name: item.Title,
		}
		if info := item.PersonalInfo; info != nil {
			lead.Title = info.JobTitle
			lead.Company = info.CompanyName
			lead.Location = info.Location
		}
		leads = append(leads, lead)
	}

	return leads, nil
}
