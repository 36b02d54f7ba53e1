// Package mcp provides an MCP (Model Context Protocol) server adapter for Lexa.
// It lets AI assistants search the legal glossary, annotate their HTML
// answers and fetch the verbatim text of statute articles.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingAnnotationService is returned when the annotation service is not provided.
var ErrMissingAnnotationService = errors.New("mcp: annotation service is required")

// ErrMissingArticleService is returned when the article service is not provided.
var ErrMissingArticleService = errors.New("mcp: article service is required")
