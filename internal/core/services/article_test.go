package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

func TestArticleService_Lookup(t *testing.T) {
	svc := NewArticleService(newTestLexicon(t, fixtureRecords()))

	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "canonical key", key: "art. 23", want: "art. 23"},
		{name: "spelled out", key: "Artigo 23", want: "art. 23"},
		{name: "ordinal dropped", key: "art. 5", want: "art. 5º"},
		{name: "ordinal kept", key: "Art. 5º", want: "art. 5º"},
		{name: "glossary", key: "LOCATÁRIO", want: "locatário"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := svc.Lookup(context.Background(), tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.Key)
		})
	}
}

func TestArticleService_Lookup_Errors(t *testing.T) {
	svc := NewArticleService(newTestLexicon(t, fixtureRecords()))

	_, err := svc.Lookup(context.Background(), "art. 999")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Lookup(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Lookup(ctx, "locador")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestArticleService_Lookup_Unavailable(t *testing.T) {
	svc := NewArticleService(NewLexicon(&stubLoader{}, time.Second))

	_, err := svc.Lookup(context.Background(), "locador")

	assert.ErrorIs(t, err, domain.ErrCorpusUnavailable)
}

func TestArticleService_FullText(t *testing.T) {
	svc := NewArticleService(newTestLexicon(t, fixtureRecords()))

	rec, err := svc.FullText(context.Background(), "Artigo 23")
	require.NoError(t, err)
	assert.Equal(t, domain.ClassCitation, rec.Class())
	assert.Contains(t, rec.FullText, "O locatário é obrigado a")

	_, err = svc.FullText(context.Background(), "fiador")
	assert.ErrorIs(t, err, domain.ErrNotCitation)

	_, err = svc.FullText(context.Background(), "art. 999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
