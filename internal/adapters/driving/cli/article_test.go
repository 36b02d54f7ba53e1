package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

func TestArticleCmd_FullText(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "article", "Artigo", "23")

	require.NoError(t, err)
	assert.Contains(t, out, "ARTIGO 23\n=========\n\n")
	assert.Contains(t, out, "Art. 23 - O locatário é obrigado a:")
	assert.Contains(t, out, "XII - pagar as despesas ordinárias de condomínio.")
}

func TestArticleCmd_GlossaryNeedsSummaryFlag(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "article", "fiador")

	assert.ErrorIs(t, err, domain.ErrNotCitation)
	assert.ErrorContains(t, err, `lexa article --summary "fiador"`)
}

func TestArticleCmd_Summary(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "article", "--summary", "fiador")

	require.NoError(t, err)
	assert.Contains(t, out, "FIADOR\n\n")
	assert.Contains(t, out, "terceiro que se obriga")
}

func TestArticleCmd_NotFound(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "article", "art. 999")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestArticleCmd_RequiresKey(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "article")

	assert.Error(t, err)
}

func TestArticleCmd_Source(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "article", "--source", "art.", "23")

	require.NoError(t, err)
	assert.Equal(t, "https://www.google.com/search?q=Lei+do+Inquilinato+Artigo+23\n", out)
}

func TestArticleCmd_SourceGlossary(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "article", "--source", "fiador")

	assert.ErrorIs(t, err, domain.ErrNotCitation)
}

func TestArticleCmd_SourceWithoutActions(t *testing.T) {
	s := setupTestServices(t)
	s.Actions = nil
	SetServices(s)

	_, err := execute(t, "", "article", "--source", "art. 23")

	assert.ErrorContains(t, err, "article actions not configured")
}

func TestArticleCmd_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "article", "--summary", "fiador")
	require.NoError(t, err)

	out, err := execute(t, "", "article", "--source", "art. 23")
	require.NoError(t, err)
	assert.Equal(t, "https://www.google.com/search?q=Lei+do+Inquilinato+Artigo+23\n", out)

	out, err = execute(t, "", "article", "art. 23")
	require.NoError(t, err)
	assert.Contains(t, out, "ARTIGO 23\n=========")
}
