package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexa-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the glossary interactively",
	Long: `Launch the interactive glossary browser.

Results update as you type. Open an entry to read its summary, or the
full statute text for articles of the Lei do Inquilinato.

Controls:
  ↑/↓        Navigate results
  tab        Switch between input and results
  enter      Open entry
  y          Copy the open entry
  o          Open the article's source in a browser
  esc        Back
  ?          Help (from the menu)
  ctrl+c     Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ctx := commandContext(cmd)

	ports := &tui.Ports{
		Search:  searchService,
		Article: articleService,
		Corpus:  corpusService,
		Actions: actionService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(ctx).WithSearchLimit(defaultSearchLimit())

	if watchCorpus && corpusService != nil {
		if err := corpusService.Watch(ctx); err != nil {
			return fmt.Errorf("watching corpus: %w", err)
		}
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
