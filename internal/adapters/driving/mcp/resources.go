package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for Lexa resources.
	uriScheme = "lexa://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource listing every entry.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "terms",
		Name:        "terms",
		Description: "All glossary entries and statute articles, in corpus order",
		MIMEType:    "application/json",
	}, s.handleTermsResource)

	// Template for one article or entry.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "articles/{key}",
		Name:        "article",
		Description: "Verbatim text of a statute article, or the summary of a glossary entry",
		MIMEType:    "text/plain",
	}, s.handleArticleResource)
}

// handleTermsResource returns the list of corpus entries.
func (s *Server) handleTermsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Corpus == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	records, err := s.ports.Corpus.Terms(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing terms: %w", err)
	}

	type termInfo struct {
		Key     string `json:"key"`
		Title   string `json:"title"`
		Class   string `json:"class"`
		Summary string `json:"summary"`
	}

	infos := make([]termInfo, len(records))
	for i := range records {
		infos[i] = termInfo{
			Key:     records[i].Key,
			Title:   records[i].Title(),
			Class:   records[i].Class().String(),
			Summary: records[i].Summary,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling terms: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleArticleResource returns the content of one entry: the full text for
// articles, the summary otherwise.
func (s *Server) handleArticleResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	key := extractArticleKey(req.Params.URI)
	if key == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	rec, err := s.ports.Article.Lookup(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting article: %w", err)
	}

	text := rec.Summary
	if rec.HasFullText() {
		text = rec.FullText
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     rec.Title() + "\n\n" + text,
		}},
	}, nil
}

// extractArticleKey extracts the unescaped key from a URI like
// lexa://articles/art.%2023.
func extractArticleKey(uri string) string {
	const prefix = uriScheme + "articles/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	key, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(key)
}
