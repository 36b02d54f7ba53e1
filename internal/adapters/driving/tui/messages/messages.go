// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

// SearchCompleted carries search results back to the model. Query is the
// query the results belong to, so stale responses can be dropped.
type SearchCompleted struct {
	Query   string
	Results []domain.SearchResult
	Err     error
}

// ArticleSelected is sent when an entry is chosen for the article view.
type ArticleSelected struct {
	Key string
}

// ArticleLoaded carries the entry shown in the article view.
type ArticleLoaded struct {
	Key    string
	Record *domain.DefinitionRecord
	Err    error
}

// ActionCompleted reports the outcome of a clipboard or browser action.
type ActionCompleted struct {
	Key    string
	Action string
	Err    error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the live search view.
	ViewSearch
	// ViewArticle shows one entry, with full text for articles.
	ViewArticle
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewArticle:
		return "article"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
