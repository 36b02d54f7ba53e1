package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

// fixtureRecords mirrors the shape of the shipped corpus: glossary entries
// first, then statute articles, in a fixed order.
func fixtureRecords() []domain.DefinitionRecord {
	return []domain.DefinitionRecord{
		{Key: "locador", Summary: "Parte que cede o imóvel para uso mediante aluguel."},
		{Key: "locatário", Summary: "Conhecido como inquilino, recebe o imóvel e paga o aluguel."},
		{Key: "fiador", Summary: "Terceiro que garante as dívidas do locatário."},
		{Key: "despejo", Summary: "Procedimento judicial para a desocupação do imóvel."},
		{Key: "denúncia vazia", Summary: "Rescisão pelo locador sem justificativa."},
		{
			Key:      "art. 5º",
			Summary:  "A retomada do imóvel se faz por ação de despejo.",
			FullText: "Art. 5º - Seja qual for o fundamento do término da locação, a ação do locador para reaver o imóvel é a de despejo.",
		},
		{
			Key:      "art. 23",
			Summary:  "Obrigações do locatário.",
			FullText: "Art. 23 - O locatário é obrigado a: I - pagar pontualmente o aluguel e os encargos da locação.",
		},
	}
}

// stubLoader is a driven.CorpusLoader over fixed records.
type stubLoader struct {
	records []domain.DefinitionRecord
	err     error
	calls   int
}

func (l *stubLoader) Load(_ context.Context) ([]domain.DefinitionRecord, error) {
	l.calls++
	return l.records, l.err
}

func (l *stubLoader) Source() string { return "stub" }

// newTestLexicon returns a lexicon loaded with records.
func newTestLexicon(t *testing.T, records []domain.DefinitionRecord) *Lexicon {
	t.Helper()
	lex := NewLexicon(&stubLoader{records: records}, time.Second)
	require.NoError(t, lex.Load(context.Background()))
	return lex
}
