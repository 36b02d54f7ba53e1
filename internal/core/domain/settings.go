package domain

import (
	"fmt"
	"net/url"
	"time"
)

// Setting keys used by the config store. Nested TOML tables flatten to these.
const (
	SettingCorpusPath        = "corpus.path"
	SettingCorpusWatch       = "corpus.watch"
	SettingSearchLimit       = "search.limit"
	SettingMaxTextBytes      = "annotate.max_text_bytes"
	SettingMatchTimeoutMS    = "annotate.match_timeout_ms"
	SettingSearchURL         = "annotate.search_url"
	SettingSourceQueryPrefix = "annotate.source_query_prefix"
)

// Defaults for annotation bounds.
const (
	DefaultMaxTextBytes      = 64 * 1024
	DefaultMatchTimeout      = 250 * time.Millisecond
	DefaultSearchURL         = "https://www.google.com/search?q="
	DefaultSourceQueryPrefix = "Lei do Inquilinato "
)

// CorpusSettings controls where the corpus comes from.
type CorpusSettings struct {
	// Path is an optional YAML file replacing the embedded corpus.
	Path string

	// Watch reloads Path when it changes (long-running commands only).
	Watch bool
}

// SearchSettings holds search behaviour configuration.
type SearchSettings struct {
	// Limit is the default result limit, at most MaxSearchResults.
	Limit int
}

// AnnotateSettings bounds annotation work and shapes its links.
type AnnotateSettings struct {
	// MaxTextBytes is the largest text leaf that is scanned. Larger leaves
	// are left unchanged.
	MaxTextBytes int

	// MatchTimeout caps pattern evaluation for a single leaf.
	MatchTimeout time.Duration

	// SearchURL is the search engine prefix the source query is appended to.
	SearchURL string

	// SourceQueryPrefix is prepended to the humanised key in source queries.
	SourceQueryPrefix string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Corpus   CorpusSettings
	Search   SearchSettings
	Annotate AnnotateSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The embedded corpus is used unless Corpus.Path is set.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Search: SearchSettings{
			Limit: MaxSearchResults,
		},
		Annotate: AnnotateSettings{
			MaxTextBytes:      DefaultMaxTextBytes,
			MatchTimeout:      DefaultMatchTimeout,
			SearchURL:         DefaultSearchURL,
			SourceQueryPrefix: DefaultSourceQueryPrefix,
		},
	}
}

// Validate checks the settings are usable.
func (s *AppSettings) Validate() error {
	if s.Search.Limit < 1 || s.Search.Limit > MaxSearchResults {
		return fmt.Errorf("%w: search limit must be between 1 and %d", ErrInvalidInput, MaxSearchResults)
	}
	if s.Annotate.MaxTextBytes <= 0 {
		return fmt.Errorf("%w: max text bytes must be positive", ErrInvalidInput)
	}
	if s.Annotate.MatchTimeout <= 0 {
		return fmt.Errorf("%w: match timeout must be positive", ErrInvalidInput)
	}
	u, err := url.Parse(s.Annotate.SearchURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: search url %q is not absolute", ErrInvalidInput, s.Annotate.SearchURL)
	}
	return nil
}

// SourceURL builds the external "search source" link for a humanised key.
func (s *AnnotateSettings) SourceURL(title string) string {
	return s.SearchURL + url.QueryEscape(s.SourceQueryPrefix+title)
}
