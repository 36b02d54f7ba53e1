package driving

import (
	"context"
)

// ArticleActionService provides side-effecting actions on corpus entries.
// This is used by the TUI article view and the CLI.
type ArticleActionService interface {
	// CopyToClipboard copies the entry's summary and full text to the system clipboard.
	CopyToClipboard(ctx context.Context, key string) error

	// SourceURL returns the external search link for a citation entry.
	// Returns domain.ErrNotCitation for glossary entries.
	SourceURL(ctx context.Context, key string) (string, error)

	// OpenSource opens the citation's source link in the default browser.
	OpenSource(ctx context.Context, key string) error
}
