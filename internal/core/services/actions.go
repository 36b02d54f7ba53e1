package services

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
	"github.com/custodia-labs/lexa-cli/internal/core/ports/driving"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure ArticleActionService implements the interface.
var _ driving.ArticleActionService = (*ArticleActionService)(nil)

// commandRunner starts an external command, feeding stdin when non-empty.
type commandRunner func(name string, args []string, stdin string) error

// ArticleActionService provides clipboard and browser actions on entries.
type ArticleActionService struct {
	articles driving.ArticleService
	settings domain.AnnotateSettings
	run      commandRunner
	goos     string
}

// NewArticleActionService creates a new article action service.
func NewArticleActionService(
	articles driving.ArticleService,
	settings domain.AnnotateSettings,
) *ArticleActionService {
	defaults := domain.DefaultAppSettings().Annotate
	if settings.SearchURL == "" {
		settings.SearchURL = defaults.SearchURL
	}
	if settings.SourceQueryPrefix == "" {
		settings.SourceQueryPrefix = defaults.SourceQueryPrefix
	}
	return &ArticleActionService{
		articles: articles,
		settings: settings,
		run:      runCommand,
		goos:     runtime.GOOS,
	}
}

// CopyToClipboard copies the entry's text to the system clipboard.
func (s *ArticleActionService) CopyToClipboard(ctx context.Context, key string) error {
	rec, err := s.articles.Lookup(ctx, key)
	if err != nil {
		return err
	}

	text := rec.Summary
	if rec.HasFullText() {
		text += "\n\n" + strings.TrimSpace(rec.FullText)
	}

	name, args, err := s.clipboardCommand()
	if err != nil {
		return err
	}
	return s.run(name, args, text)
}

// SourceURL returns the search link for a citation entry.
func (s *ArticleActionService) SourceURL(ctx context.Context, key string) (string, error) {
	rec, err := s.articles.FullText(ctx, key)
	if err != nil {
		return "", err
	}
	return s.settings.SourceURL(domain.CitationLabel(domain.NormalizeKey(rec.Key))), nil
}

// OpenSource opens the citation's search link in the default browser.
func (s *ArticleActionService) OpenSource(ctx context.Context, key string) error {
	link, err := s.SourceURL(ctx, key)
	if err != nil {
		return err
	}

	name, args, err := s.openCommand(link)
	if err != nil {
		return err
	}
	return s.run(name, args, "")
}

// clipboardCommand picks an OS-specific clipboard utility.
func (s *ArticleActionService) clipboardCommand() (string, []string, error) {
	switch s.goos {
	case osDarwin:
		return "pbcopy", nil, nil
	case osLinux:
		// Try xclip first, fall back to xsel
		if _, err := exec.LookPath("xclip"); err == nil {
			return "xclip", []string{"-selection", "clipboard"}, nil
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return "xsel", []string{"--clipboard", "--input"}, nil
		}
		return "", nil, fmt.Errorf("no clipboard utility found (install xclip or xsel)")
	case osWindows:
		return "cmd", []string{"/c", "clip"}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", s.goos)
	}
}

// openCommand picks an OS-specific URL opener.
func (s *ArticleActionService) openCommand(link string) (string, []string, error) {
	switch s.goos {
	case osDarwin:
		return "open", []string{link}, nil
	case osLinux:
		return "xdg-open", []string{link}, nil
	case osWindows:
		return "rundll32", []string{"url.dll,FileProtocolHandler", link}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", s.goos)
	}
}

func runCommand(name string, args []string, stdin string) error {
	cmd := exec.Command(name, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
		return cmd.Run()
	}
	return cmd.Start()
}
