package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexa-cli/internal/adapters/driven/corpus"
	"github.com/custodia-labs/lexa-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lexa-cli/internal/core/domain"
	"github.com/custodia-labs/lexa-cli/internal/core/services"
)

// setupTestServices wires real services over the embedded corpus and
// in-memory stores, and restores the package state when the test ends.
func setupTestServices(t *testing.T) *Services {
	t.Helper()

	lexicon := services.NewLexicon(corpus.NewLoader(""), time.Second)
	require.NoError(t, lexicon.Load(context.Background()))

	article := services.NewArticleService(lexicon)
	s := &Services{
		Search:     services.NewSearchService(lexicon),
		Annotation: services.NewAnnotationService(lexicon, domain.AnnotateSettings{}),
		Article:    article,
		Corpus:     services.NewCorpusService(lexicon, nil, ""),
		Draft:      services.NewDraftService(memory.NewDraftStore()),
		Settings:   services.NewSettingsService(memory.NewConfigStore()),
		Actions:    services.NewArticleActionService(article, domain.AnnotateSettings{}),
	}
	SetServices(s)

	prev := bootstrap
	bootstrap = nil
	t.Cleanup(func() {
		SetServices(nil)
		bootstrap = prev
		resetFlags()
	})
	return s
}

// resetFlags restores every flag to its default and clears its Changed
// state. Both persist across Execute calls, and flag groups such as
// article's --summary/--source/--open read Changed.
func resetFlags() {
	resetCommandFlags(rootCmd)
}

func resetCommandFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetCommandFlags(sub)
	}
}

// execute runs the root command with args and returns everything written
// to its output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	resetFlags()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	var in io.Reader = strings.NewReader(stdin)
	rootCmd.SetIn(in)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}
