package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the legal glossary",
	Long: `Ranks glossary entries and statute articles against a query.

Titles are matched with typo tolerance, summaries and article texts by
substring or by the closest word. Queries shorter than three characters
return nothing. At most seven results are shown.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0,
		fmt.Sprintf("maximum number of results (1-%d, default from config)", domain.MaxSearchResults))
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

// searchResultJSON is the JSON shape of a search hit.
type searchResultJSON struct {
	Key      string  `json:"key"`
	Title    string  `json:"title"`
	Summary  string  `json:"summary"`
	Score    float64 `json:"score"`
	Class    string  `json:"class"`
	FullText bool    `json:"full_text"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	opts := domain.SearchOptions{Limit: searchLimit}
	if opts.Limit == 0 {
		opts.Limit = defaultSearchLimit()
	}

	results, err := searchService.Search(commandContext(cmd), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	out := make([]searchResultJSON, 0, len(results))
	for i := range results {
		r := &results[i]
		out = append(out, searchResultJSON{
			Key:      r.Key,
			Title:    r.DisplayTitle,
			Summary:  r.ContentPreview,
			Score:    r.Score,
			Class:    r.Class.String(),
			FullText: r.Class == domain.ClassCitation,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		r := &results[i]
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, r.DisplayTitle, r.Score)
		cmd.Printf("      %s\n", r.ContentPreview)
		if r.Class == domain.ClassCitation {
			cmd.Printf("      Full text: lexa article %q\n", r.Key)
		}
		cmd.Println()
	}

	return nil
}

// defaultSearchLimit returns the configured result limit, or zero to let
// the service apply its own default.
func defaultSearchLimit() int {
	if settingsService == nil {
		return 0
	}
	settings, err := settingsService.Get()
	if err != nil {
		return 0
	}
	return settings.Search.Limit
}
