package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

type recordedCommand struct {
	name  string
	args  []string
	stdin string
}

func newTestActionService(t *testing.T, goos string) (*ArticleActionService, *[]recordedCommand) {
	t.Helper()
	svc := NewArticleActionService(
		NewArticleService(newTestLexicon(t, fixtureRecords())),
		domain.AnnotateSettings{},
	)
	var calls []recordedCommand
	svc.goos = goos
	svc.run = func(name string, args []string, stdin string) error {
		calls = append(calls, recordedCommand{name: name, args: args, stdin: stdin})
		return nil
	}
	return svc, &calls
}

func TestArticleActionService_SourceURL(t *testing.T) {
	svc, _ := newTestActionService(t, osDarwin)

	link, err := svc.SourceURL(context.Background(), "Artigo 5º")

	require.NoError(t, err)
	assert.Equal(t, "https://www.google.com/search?q=Lei+do+Inquilinato+Artigo+5", link)
}

func TestArticleActionService_SourceURL_Glossary(t *testing.T) {
	svc, _ := newTestActionService(t, osDarwin)

	_, err := svc.SourceURL(context.Background(), "fiador")

	assert.ErrorIs(t, err, domain.ErrNotCitation)
}

func TestArticleActionService_OpenSource(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{osDarwin, "open", []string{"https://www.google.com/search?q=Lei+do+Inquilinato+Artigo+23"}},
		{osLinux, "xdg-open", []string{"https://www.google.com/search?q=Lei+do+Inquilinato+Artigo+23"}},
		{osWindows, "rundll32", []string{"url.dll,FileProtocolHandler", "https://www.google.com/search?q=Lei+do+Inquilinato+Artigo+23"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			svc, calls := newTestActionService(t, tt.goos)

			require.NoError(t, svc.OpenSource(context.Background(), "art. 23"))

			require.Len(t, *calls, 1)
			assert.Equal(t, tt.wantName, (*calls)[0].name)
			assert.Equal(t, tt.wantArgs, (*calls)[0].args)
			assert.Empty(t, (*calls)[0].stdin)
		})
	}
}

func TestArticleActionService_OpenSource_UnsupportedPlatform(t *testing.T) {
	svc, calls := newTestActionService(t, "plan9")

	err := svc.OpenSource(context.Background(), "art. 23")

	assert.ErrorContains(t, err, "unsupported platform")
	assert.Empty(t, *calls)
}

func TestArticleActionService_CopyToClipboard(t *testing.T) {
	svc, calls := newTestActionService(t, osDarwin)

	require.NoError(t, svc.CopyToClipboard(context.Background(), "art. 23"))

	require.Len(t, *calls, 1)
	assert.Equal(t, "pbcopy", (*calls)[0].name)
	assert.Equal(t,
		"Obrigações do locatário.\n\nArt. 23 - O locatário é obrigado a: I - pagar pontualmente o aluguel e os encargos da locação.",
		(*calls)[0].stdin)
}

func TestArticleActionService_CopyToClipboard_Glossary(t *testing.T) {
	svc, calls := newTestActionService(t, osWindows)

	require.NoError(t, svc.CopyToClipboard(context.Background(), "fiador"))

	require.Len(t, *calls, 1)
	assert.Equal(t, "cmd", (*calls)[0].name)
	assert.Equal(t, "Terceiro que garante as dívidas do locatário.", (*calls)[0].stdin)
}

func TestArticleActionService_Errors(t *testing.T) {
	svc, calls := newTestActionService(t, osDarwin)
	boom := errors.New("boom")
	svc.run = func(string, []string, string) error { return boom }

	assert.ErrorIs(t, svc.CopyToClipboard(context.Background(), "art. 999"), domain.ErrNotFound)
	assert.ErrorIs(t, svc.CopyToClipboard(context.Background(), "fiador"), boom)
	assert.Empty(t, *calls)
}
