// Command lexa recognises Lei do Inquilinato terms in assistant answers.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/lexa-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lexa-cli/internal/adapters/driven/corpus"
	"github.com/custodia-labs/lexa-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lexa-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/lexa-cli/internal/adapters/driven/watcher"
	"github.com/custodia-labs/lexa-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/lexa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexa-cli/internal/core/services"
	"github.com/custodia-labs/lexa-cli/internal/logger"
)

// CorpusEnv overrides the configured corpus path. The --corpus flag wins.
const CorpusEnv = "LEXA_CORPUS"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var closers []func() error
	cli.SetVersion(version)
	cli.SetBootstrap(func(ctx context.Context, opts cli.Options) (*cli.Services, error) {
		s, closer, err := bootstrap(ctx, opts)
		if closer != nil {
			closers = append(closers, closer)
		}
		return s, err
	})

	err := cli.Execute(ctx)
	stop()
	for _, c := range closers {
		if cerr := c(); cerr != nil {
			logger.Warn("shutdown: %v", cerr)
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

// bootstrap is the composition root. The returned closer releases the
// draft database and corpus watcher.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Services, func() error, error) {
	logger.Section("Bootstrap")

	home, err := file.HomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolving lexa home: %w", err)
	}

	var configStore driven.ConfigStore
	if fileStore, err := file.NewConfigStore(home); err != nil {
		logger.Warn("config file unavailable, using defaults: %v", err)
		configStore = memory.NewConfigStore()
	} else {
		configStore = fileStore
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("invalid settings, using defaults: %v", err)
		defaults := settingsService.GetDefaults()
		settings = &defaults
	}

	path := settings.Corpus.Path
	if env := os.Getenv(CorpusEnv); env != "" {
		path = env
	}
	if opts.CorpusPath != "" {
		path = opts.CorpusPath
	}

	lexicon := services.NewLexicon(corpus.NewLoader(path), settings.Annotate.MatchTimeout)
	if err := lexicon.Load(ctx); err != nil {
		return nil, nil, err
	}

	var closers []func() error
	closeAll := func() error {
		var first error
		for _, c := range closers {
			if err := c(); err != nil && first == nil {
				first = err
			}
		}
		return first
	}

	var corpusWatcher driven.CorpusWatcher
	if path != "" && settings.Corpus.Watch {
		if w, err := watcher.NewWatcher(0); err != nil {
			logger.Warn("corpus watching disabled: %v", err)
		} else {
			corpusWatcher = w
			closers = append(closers, w.Stop)
		}
	}

	var draftStore driven.DraftStore
	if store, err := sqlite.NewStore(filepath.Join(home, "data")); err != nil {
		logger.Warn("draft database unavailable, drafts will not persist: %v", err)
		draftStore = memory.NewDraftStore()
	} else {
		logger.Debug("Draft database: %s", store.Path())
		draftStore = store.DraftStore()
		closers = append(closers, store.Close)
	}

	articleService := services.NewArticleService(lexicon)
	return &cli.Services{
		Search:      services.NewSearchService(lexicon),
		Annotation:  services.NewAnnotationService(lexicon, settings.Annotate),
		Article:     articleService,
		Corpus:      services.NewCorpusService(lexicon, corpusWatcher, path),
		Draft:       services.NewDraftService(draftStore),
		Settings:    settingsService,
		Actions:     services.NewArticleActionService(articleService, settings.Annotate),
		WatchCorpus: corpusWatcher != nil,
	}, closeAll, nil
}
