package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/justsurfingit/Agentic-Lead-Gen/internal/config"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Fixed instruction template: one example pair, answer must be the bare
// search query with no explanation.
const searchQueryPrompt = `Convert this query into a Google search query
to find LinkedIn profiles.

Only return the search query string.
No explanation.

Example:
Input: CEO in Mumbai
Output: site:linkedin.com/in "CEO" "Mumbai"

Query: %s`

type LLMService struct {
	Client llms.Model
}

// NewLLMService initializes the Gemini client
func NewLLMService(cfg *config.Config) *LLMService {
	ctx := context.Background()

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.GeminiAPIKey),
		googleai.WithDefaultModel(cfg.GeminiModel),
	)
	if err != nil {
		log.Fatal("Failed to create Gemini client:", err)
	}

	return &LLMService{
		Client: llm,
	}
}

// BuildSearchQueryPrompt embeds the user query into the fixed template.
func BuildSearchQueryPrompt(query string) string {
	return fmt.Sprintf(searchQueryPrompt, query)
}

// ConvertToSearchQuery asks the model for a Google search query targeting
// LinkedIn profiles and returns the trimmed response verbatim.
func (s *LLMService) ConvertToSearchQuery(ctx context.Context, query string) (string, error) {
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, BuildSearchQueryPrompt(query))
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}

	searchQuery := strings.TrimSpace(resp)
	log.Println("Generated Google query:", searchQuery)

	return searchQuery, nil
}
