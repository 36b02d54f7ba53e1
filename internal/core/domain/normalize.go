package domain

import (
	"strings"
	"unicode"
)

const unknownDescription = "Unknown"

// citationPrefix is the canonical citation form every article word folds into.
const citationPrefix = "art. "

// NormalizeKey folds a matched term or a corpus key into its lookup form:
// lowercase, "artigo " becomes "art. " and ordinal markers after a digit
// are dropped. "nº" in "lei nº 8.245/91" is kept.
func NormalizeKey(s string) string {
	k := strings.ToLower(strings.TrimSpace(s))
	k = strings.ReplaceAll(k, "artigo ", citationPrefix)
	return stripOrdinals(k)
}

// stripOrdinals removes "º" and "°" where they directly follow a digit.
func stripOrdinals(s string) string {
	if !strings.ContainsAny(s, "º°") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	for _, r := range s {
		if (r == 'º' || r == '°') && unicode.IsDigit(prev) {
			prev = r
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

// NormalizeCitation folds a citation such as "Artigo 5º", "arts. 5" or
// "Art.23" into "art. 5" / "art. 23". Text without digits is passed to
// NormalizeKey unchanged.
func NormalizeCitation(s string) string {
	start := strings.IndexFunc(s, isASCIIDigit)
	if start < 0 {
		return NormalizeKey(s)
	}
	end := start
	for end < len(s) && isASCIIDigit(rune(s[end])) {
		end++
	}
	return citationPrefix + s[start:end]
}

// HumanizeKey formats a key for display: "art. 23" becomes "ARTIGO 23",
// "art. 4º" becomes "ARTIGO 4". Ordinal markers not following a digit are kept.
func HumanizeKey(key string) string {
	s := strings.ReplaceAll(strings.ToLower(key), citationPrefix, "Artigo ")
	return strings.ToUpper(stripOrdinals(s))
}

// CitationLabel spells out the article word of a key: "art. 23" becomes
// "Artigo 23". Other keys are returned unchanged.
func CitationLabel(key string) string {
	return strings.Replace(stripOrdinals(key), citationPrefix, "Artigo ", 1)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsWordRune reports whether r counts as part of a word for boundary checks.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
