package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/lexa-cli/internal/adapters/driven/markup/html"
	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

// SearchInput is the input schema for the search_terms tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the term to look up; at least 3 characters"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (1-7, default 7)"`
}

// SearchOutput is the output schema for the search_terms tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	Key      string  `json:"key"`
	Title    string  `json:"title"`
	Summary  string  `json:"summary"`
	Score    float64 `json:"score"`
	Class    string  `json:"class"`
	FullText bool    `json:"full_text"`
}

// AnnotateInput is the input schema for the annotate_html tool.
type AnnotateInput struct {
	HTML string `json:"html" jsonschema:"the HTML answer to annotate"`
}

// AnnotateOutput is the output schema for the annotate_html tool.
type AnnotateOutput struct {
	HTML        string             `json:"html"`
	Annotations []AnnotationOutput `json:"annotations"`
	Count       int                `json:"count"`
}

// AnnotationOutput describes one annotated term.
type AnnotationOutput struct {
	Key       string `json:"key"`
	Title     string `json:"title"`
	Class     string `json:"class"`
	Summary   string `json:"summary"`
	FullText  bool   `json:"full_text"`
	SourceURL string `json:"source_url,omitempty"`
}

// ArticleInput is the input schema for the get_article tool.
type ArticleInput struct {
	Key string `json:"key" jsonschema:"the article or term key, e.g. art. 23 or locatário"`
}

// ArticleOutput is the output schema for the get_article tool.
type ArticleOutput struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Class    string `json:"class"`
	Summary  string `json:"summary"`
	FullText string `json:"full_text,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_terms",
		Description: "Search the rental-law glossary and statute articles with typo tolerance",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "annotate_html",
		Description: "Mark legal terms and article citations in an HTML answer with tooltip data",
	}, s.handleAnnotate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_article",
		Description: "Get a glossary entry or the verbatim text of a statute article",
	}, s.handleArticle)
}

// handleSearch handles the search_terms tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.SearchOptions{Limit: input.Limit}
	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = SearchResultOutput{
			Key:      results[i].Key,
			Title:    results[i].DisplayTitle,
			Summary:  results[i].ContentPreview,
			Score:    results[i].Score,
			Class:    results[i].Class.String(),
			FullText: results[i].Class == domain.ClassCitation,
		}
	}

	return nil, output, nil
}

// handleAnnotate handles the annotate_html tool invocation.
func (s *Server) handleAnnotate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnnotateInput,
) (*mcp.CallToolResult, AnnotateOutput, error) {
	root, err := html.ParseString(input.HTML)
	if err != nil {
		return nil, AnnotateOutput{}, err
	}

	annotated, err := s.ports.Annotation.Annotate(ctx, root)
	if err != nil {
		return nil, AnnotateOutput{}, fmt.Errorf("annotating: %w", err)
	}

	out, err := html.RenderString(annotated)
	if err != nil {
		return nil, AnnotateOutput{}, err
	}

	anns := collectAnnotations(annotated, 0, nil)
	output := AnnotateOutput{
		HTML:        out,
		Annotations: make([]AnnotationOutput, len(anns)),
		Count:       len(anns),
	}
	for i, a := range anns {
		output.Annotations[i] = AnnotationOutput{
			Key:       a.Key,
			Title:     a.Title,
			Class:     a.Class.String(),
			Summary:   a.Summary,
			FullText:  a.FullTextAction,
			SourceURL: a.SourceURL,
		}
	}

	return nil, output, nil
}

// handleArticle handles the get_article tool invocation.
func (s *Server) handleArticle(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ArticleInput,
) (*mcp.CallToolResult, ArticleOutput, error) {
	rec, err := s.ports.Article.Lookup(ctx, input.Key)
	if errors.Is(err, domain.ErrNotFound) {
		return toolError(fmt.Sprintf("no entry for %q", input.Key)), ArticleOutput{}, nil
	}
	if err != nil {
		return nil, ArticleOutput{}, err
	}

	return nil, ArticleOutput{
		Key:      rec.Key,
		Title:    rec.Title(),
		Class:    rec.Class().String(),
		Summary:  rec.Summary,
		FullText: rec.FullText,
	}, nil
}

// toolError reports a failure the assistant can act on, rather than a
// protocol error.
func toolError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}

// collectAnnotations returns the annotation payloads below n in document order.
func collectAnnotations(n *domain.Node, depth int, acc []*domain.Annotation) []*domain.Annotation {
	if n == nil || depth > domain.MaxTreeDepth {
		return acc
	}
	if n.Annotation != nil {
		acc = append(acc, n.Annotation)
	}
	for _, c := range n.Children {
		acc = collectAnnotations(c, depth+1, acc)
	}
	return acc
}
