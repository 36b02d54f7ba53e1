package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewMenu, "menu"},
		{ViewSearch, "search"},
		{ViewArticle, "article"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.view.String())
	}
}

func TestSearchCompleted_CarriesQuery(t *testing.T) {
	msg := SearchCompleted{
		Query:   "fiador",
		Results: []domain.SearchResult{{Key: "fiador", Score: 10}},
	}

	assert.Equal(t, "fiador", msg.Query)
	assert.Len(t, msg.Results, 1)
	assert.NoError(t, msg.Err)
}

func TestArticleLoaded_Error(t *testing.T) {
	err := errors.New("not found")
	msg := ArticleLoaded{Key: "art. 999", Err: err}

	assert.Nil(t, msg.Record)
	assert.ErrorIs(t, msg.Err, err)
}
