package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

var (
	articleSummaryOnly bool
	articleSource      bool
	articleOpen        bool
)

var articleCmd = &cobra.Command{
	Use:   "article [key]",
	Short: "Show the full text of a statute article",
	Long: `Prints the title and verbatim text of an article, e.g. "art. 23" or
"Artigo 5º". Glossary entries have no full text; use --summary to print
their summary instead.

--source prints the article's search link; --open opens it in a browser.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runArticle,
}

func init() {
	articleCmd.Flags().BoolVarP(&articleSummaryOnly, "summary", "s", false, "print the summary of any entry")
	articleCmd.Flags().BoolVar(&articleSource, "source", false, "print the article's source search link")
	articleCmd.Flags().BoolVar(&articleOpen, "open", false, "open the article's source in the default browser")
	articleCmd.MarkFlagsMutuallyExclusive("summary", "source", "open")
	rootCmd.AddCommand(articleCmd)
}

func runArticle(cmd *cobra.Command, args []string) error {
	if articleService == nil {
		return errors.New("article service not configured")
	}
	key := strings.Join(args, " ")
	ctx := commandContext(cmd)

	if articleSource || articleOpen {
		return runArticleSource(cmd, key)
	}

	if articleSummaryOnly {
		rec, err := articleService.Lookup(ctx, key)
		if err != nil {
			return err
		}
		cmd.Println(rec.Title())
		cmd.Println()
		cmd.Println(rec.Summary)
		return nil
	}

	rec, err := articleService.FullText(ctx, key)
	if errors.Is(err, domain.ErrNotCitation) {
		return fmt.Errorf("%w; try: lexa article --summary %q", err, key)
	}
	if err != nil {
		return err
	}

	cmd.Println(rec.Title())
	cmd.Println(strings.Repeat("=", len([]rune(rec.Title()))))
	cmd.Println()
	cmd.Println(rec.FullText)
	return nil
}

func runArticleSource(cmd *cobra.Command, key string) error {
	if actionService == nil {
		return errors.New("article actions not configured")
	}
	ctx := commandContext(cmd)

	if articleOpen {
		return actionService.OpenSource(ctx, key)
	}
	link, err := actionService.SourceURL(ctx, key)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), link)
	return nil
}
