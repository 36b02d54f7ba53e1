package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractArticleKey(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{name: "plain key", uri: "lexa://articles/fiador", expected: "fiador"},
		{name: "escaped key", uri: "lexa://articles/art.%2023", expected: "art. 23"},
		{name: "escaped accents", uri: "lexa://articles/locat%C3%A1rio", expected: "locatário"},
		{name: "invalid prefix", uri: "file://articles/fiador", expected: ""},
		{name: "bad escape", uri: "lexa://articles/%zz", expected: ""},
		{name: "empty URI", uri: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractArticleKey(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleTermsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil corpus service returns empty list", func(t *testing.T) {
		ports := newTestPorts()
		ports.Corpus = nil
		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handleTermsResource(ctx, makeReadResourceRequest("lexa://terms"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns terms in order", func(t *testing.T) {
		server, err := NewServer(newTestPorts())
		require.NoError(t, err)

		result, err := server.handleTermsResource(ctx, makeReadResourceRequest("lexa://terms"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var terms []map[string]string
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &terms))
		require.Len(t, terms, 2)
		assert.Equal(t, "fiador", terms[0]["key"])
		assert.Equal(t, "glossary", terms[0]["class"])
		assert.Equal(t, "ARTIGO 23", terms[1]["title"])
		assert.Equal(t, "citation", terms[1]["class"])
	})

	t.Run("service error", func(t *testing.T) {
		ports := newTestPorts()
		ports.Corpus = &mockCorpusService{err: errors.New("boom")}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, err = server.handleTermsResource(ctx, makeReadResourceRequest("lexa://terms"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing terms")
	})
}

func TestServer_handleArticleResource(t *testing.T) {
	ctx := context.Background()
	server, err := NewServer(newTestPorts())
	require.NoError(t, err)

	t.Run("citation returns full text", func(t *testing.T) {
		result, err := server.handleArticleResource(ctx, makeReadResourceRequest("lexa://articles/art.%2023"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "ARTIGO 23\n\nArt. 23 - O locatário é obrigado a pagar o aluguel.", result.Contents[0].Text)
	})

	t.Run("glossary returns summary", func(t *testing.T) {
		result, err := server.handleArticleResource(ctx, makeReadResourceRequest("lexa://articles/fiador"))

		require.NoError(t, err)
		assert.Equal(t, "FIADOR\n\nGarante as dívidas do locatário.", result.Contents[0].Text)
	})

	t.Run("unknown key is not found", func(t *testing.T) {
		_, err := server.handleArticleResource(ctx, makeReadResourceRequest("lexa://articles/art.%20999"))

		require.Error(t, err)
	})

	t.Run("malformed uri is not found", func(t *testing.T) {
		_, err := server.handleArticleResource(ctx, makeReadResourceRequest("lexa://other"))

		require.Error(t, err)
	})
}
