package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchQueryPrompt_EmbedsQuery(t *testing.T) {
	prompt := BuildSearchQueryPrompt("CTO in Berlin")

	assert.True(t, strings.HasSuffix(prompt, "Query: CTO in Berlin"))
	assert.Contains(t, prompt, "Only return the search query string.")
	assert.Contains(t, prompt, "No explanation.")
}

func TestBuildSearchQueryPrompt_ContainsExamplePair(t *testing.T) {
	prompt := BuildSearchQueryPrompt("anything")

	assert.Contains(t, prompt, "Input: CEO in Mumbai")
	assert.Contains(t, prompt, `Output: site:linkedin.com/in "CEO" "Mumbai"`)
}

func TestBuildSearchQueryPrompt_QueryUsedVerbatim(t *testing.T) {
	query := `founders "fintech" near São Paulo`
	prompt := BuildSearchQueryPrompt(query)

	assert.Contains(t, prompt, query)
}
