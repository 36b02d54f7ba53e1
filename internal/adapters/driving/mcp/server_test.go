package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil search service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(newTestPorts())
		require.NoError(t, err)
		assert.NotNil(t, server)
		assert.Equal(t, DefaultRateLimit, server.rateLimit)
	})

	t.Run("rate limit option", func(t *testing.T) {
		cfg := RateLimitConfig{RequestsPerSecond: 1, Burst: 2}
		server, err := NewServer(newTestPorts(), WithRateLimit(cfg))
		require.NoError(t, err)
		assert.Equal(t, cfg, server.rateLimit)
	})
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ports   func() *Ports
		wantErr error
	}{
		{
			name:    "nil search service",
			ports:   func() *Ports { p := newTestPorts(); p.Search = nil; return p },
			wantErr: ErrMissingSearchService,
		},
		{
			name:    "nil annotation service",
			ports:   func() *Ports { p := newTestPorts(); p.Annotation = nil; return p },
			wantErr: ErrMissingAnnotationService,
		},
		{
			name:    "nil article service",
			ports:   func() *Ports { p := newTestPorts(); p.Article = nil; return p },
			wantErr: ErrMissingArticleService,
		},
		{
			name:  "corpus is optional",
			ports: func() *Ports { p := newTestPorts(); p.Corpus = nil; return p },
		},
		{
			name:  "all ports",
			ports: newTestPorts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports().Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
