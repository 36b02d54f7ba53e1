package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lexa-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services holds the driving ports the commands call.
type Services struct {
	Search     driving.SearchService
	Annotation driving.AnnotationService
	Article    driving.ArticleService
	Corpus     driving.CorpusService
	Draft      driving.DraftService
	Settings   driving.SettingsService
	Actions    driving.ArticleActionService

	// WatchCorpus reports whether long-running commands should reload the
	// corpus file when it changes.
	WatchCorpus bool
}

// Options are the root flags handed to the bootstrap function.
type Options struct {
	Verbose    bool
	CorpusPath string
}

// Bootstrap builds the services once flags are parsed.
type Bootstrap func(ctx context.Context, opts Options) (*Services, error)

var (
	searchService     driving.SearchService
	annotationService driving.AnnotationService
	articleService    driving.ArticleService
	corpusService     driving.CorpusService
	draftService      driving.DraftService
	settingsService   driving.SettingsService
	actionService     driving.ArticleActionService
	watchCorpus       bool

	bootstrap Bootstrap
)

var (
	verboseFlag bool
	corpusFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "lexa",
	Short: "Legal term recognition for rental-law answers",
	Long: `Lexa recognises Brazilian rental-law terms and statute citations in
assistant answers, annotates them with tooltips and full-text links, and
searches the glossary with typo-tolerant ranking.`,
	SilenceUsage:      true,
	PersistentPreRunE: runRootPreRun,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print diagnostic output to stderr")
	rootCmd.PersistentFlags().StringVar(&corpusFlag, "corpus", "", "corpus YAML file replacing the embedded glossary")
}

// SetServices installs the services used by every command.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	searchService = s.Search
	annotationService = s.Annotation
	articleService = s.Article
	corpusService = s.Corpus
	draftService = s.Draft
	settingsService = s.Settings
	actionService = s.Actions
	watchCorpus = s.WatchCorpus
}

// SetBootstrap installs the function that builds services from root flags.
// It runs before every command except version.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runRootPreRun(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if bootstrap == nil || cmd == versionCmd {
		return nil
	}
	s, err := bootstrap(commandContext(cmd), Options{Verbose: verboseFlag, CorpusPath: corpusFlag})
	if err != nil {
		return err
	}
	SetServices(s)
	return nil
}

// commandContext returns the command's context, or Background when the
// command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
