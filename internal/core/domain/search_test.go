package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchOptions_ZeroValueUsesMax(t *testing.T) {
	opts := SearchOptions{}

	assert.Equal(t, MaxSearchResults, opts.EffectiveLimit())
}

func TestSearchOptions_EffectiveLimitBounds(t *testing.T) {
	tests := []struct {
		limit    int
		expected int
	}{
		{limit: -1, expected: MaxSearchResults},
		{limit: 1, expected: 1},
		{limit: MaxSearchResults, expected: MaxSearchResults},
		{limit: 100, expected: MaxSearchResults},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SearchOptions{Limit: tt.limit}.EffectiveLimit(), "limit %d", tt.limit)
	}
}

func TestSearchResult_Fields(t *testing.T) {
	r := SearchResult{
		Key:            "art. 23",
		DisplayTitle:   "ARTIGO 23",
		ContentPreview: "Obrigações do locatário.",
		Score:          10,
		Class:          ClassCitation,
	}

	assert.Equal(t, "citation", r.Class.String())
	assert.GreaterOrEqual(t, r.Score, 0.0)
}
