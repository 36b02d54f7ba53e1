package services

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

// auxiliaryVocabulary is contract-law jargon highlighted even when the corpus
// has no entry for it. Terms without an entry render as plain emphasis.
var auxiliaryVocabulary = []string{
	"lei do inquilinato",
	"sublocação",
	"revisional de aluguel",
	"ação de despejo",
	"contrato de locação",
	"notificação premonitória",
	"jurisprudência",
	"aditivo contratual",
	"rescisão de contrato",
	"multa contratual",
	"garantia locatícia",
	"seguro-fiança",
	"purgação da mora",
	"liminar de despejo",
	"alienação do imóvel",
	"prazo determinado",
	"prazo indeterminado",
	"reajuste do aluguel",
	"índice de reajuste",
	"obrigações do locador",
	"obrigações do locatário",
	"vistoria",
	"cláusula penal",
	"renovatória de aluguel",
	"imóvel residencial",
	"imóvel não residencial",
	"locação por temporada",
}

const (
	// notAfterWord and notBeforeWord anchor every alternative on Unicode
	// word boundaries, so "locador" does not match inside "locadora".
	notAfterWord  = `(?<![\p{L}\p{N}_])`
	notBeforeWord = `(?![\p{L}\p{N}_])`

	// citationExpr matches "Art. 23", "Artigo 5º", "arts. 46", "Art.47".
	citationExpr = `(?:Art\.|Artigo|arts\.)\s*[0-9]+[º°]?`

	// ordinalSigns are the masculine ordinal indicator and the degree sign,
	// which authors use interchangeably after article numbers.
	ordinalSigns = "º°"
)

// Pattern is the compiled term matcher for one corpus snapshot.
// A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	re         *regexp2.Regexp
	vocabulary []string

	// citationGroup is the capture group of the citation alternative.
	citationGroup int
}

// CompilePattern builds one case-insensitive alternation from the corpus keys,
// the auxiliary vocabulary and the citation expression. Alternatives are
// deduplicated and ordered longest first so the longest term at a position
// wins. A nil or empty corpus still yields a working pattern.
func CompilePattern(corpus *domain.Corpus, timeout time.Duration) (*Pattern, error) {
	vocab := buildVocabulary(corpus.Keys(), auxiliaryVocabulary)

	var expr strings.Builder
	citationGroup := 1
	if len(vocab) > 0 {
		expr.WriteString(notAfterWord)
		expr.WriteString("(")
		for i, term := range vocab {
			if i > 0 {
				expr.WriteByte('|')
			}
			expr.WriteString(termExpr(term))
		}
		expr.WriteString(")")
		expr.WriteString(notBeforeWord)
		expr.WriteByte('|')
		citationGroup = 2
	}
	expr.WriteString(notAfterWord)
	expr.WriteString("(")
	expr.WriteString(citationExpr)
	expr.WriteString(")")
	expr.WriteString(notBeforeWord)

	re, err := regexp2.Compile(expr.String(), regexp2.IgnoreCase)
	if err != nil {
		return nil, fmt.Errorf("compile term pattern: %w", err)
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}

	return &Pattern{re: re, vocabulary: vocab, citationGroup: citationGroup}, nil
}

// termExpr escapes one vocabulary term. Article keys such as "art. 23" or
// "art. 4º" accept an optional ordinal or degree sign after the number, so
// the sign always stays inside the match.
func termExpr(term string) string {
	base := strings.TrimRight(term, ordinalSigns)
	if !strings.HasPrefix(base, "art. ") {
		return regexp2.Escape(term)
	}
	last, _ := utf8.DecodeLastRuneInString(base)
	if last < '0' || last > '9' {
		return regexp2.Escape(term)
	}
	return regexp2.Escape(base) + "[" + ordinalSigns + "]?"
}

// buildVocabulary merges term lists into lowercase, deduplicated alternatives,
// longest first with ties in lexical order.
func buildVocabulary(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, term := range list {
			t := strings.ToLower(strings.TrimSpace(term))
			if t == "" {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(out[i]), utf8.RuneCountInString(out[j])
		if li != lj {
			return li > lj
		}
		return out[i] < out[j]
	})
	return out
}

// Vocabulary returns the alternatives in match priority order.
func (p *Pattern) Vocabulary() []string {
	out := make([]string, len(p.vocabulary))
	copy(out, p.vocabulary)
	return out
}

// String returns the compiled expression.
func (p *Pattern) String() string {
	return p.re.String()
}

// FindSpans returns the non-overlapping, leftmost-first matches in text,
// classified against corpus. Offsets are rune offsets into text.
// Text that is not valid UTF-8 yields no spans, since offsets could not be
// mapped back onto the original bytes.
// Returns domain.ErrMatchTimeout if evaluation exceeds the pattern's budget.
func (p *Pattern) FindSpans(text string, corpus *domain.Corpus) ([]domain.MatchSpan, error) {
	if text == "" || !utf8.ValidString(text) {
		return nil, nil
	}

	var spans []domain.MatchSpan
	m, err := p.re.FindStringMatch(text)
	for ; m != nil && err == nil; m, err = p.re.FindNextMatch(m) {
		matched := m.String()
		span := domain.MatchSpan{
			Start:       m.Index,
			End:         m.Index + m.Length,
			MatchedText: matched,
		}
		if g := m.GroupByNumber(p.citationGroup); g != nil && len(g.Captures) > 0 {
			span.NormalizedKey = domain.NormalizeCitation(matched)
		} else {
			span.NormalizedKey = domain.NormalizeKey(matched)
		}
		if rec, ok := corpus.Lookup(span.NormalizedKey); ok {
			span.Record = &rec
		}
		spans = append(spans, span)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMatchTimeout, err)
	}

	return spans, nil
}
