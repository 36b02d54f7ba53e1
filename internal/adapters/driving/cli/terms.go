package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

var termsClass string

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "List glossary entries",
	Long:  `Lists every corpus entry in file order with its class.`,
	Args:  cobra.NoArgs,
	RunE:  runTerms,
}

func init() {
	termsCmd.Flags().StringVar(&termsClass, "class", "", "only list glossary or citation entries")
	rootCmd.AddCommand(termsCmd)
}

func runTerms(cmd *cobra.Command, _ []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}
	switch termsClass {
	case "", domain.ClassGlossary.String(), domain.ClassCitation.String():
	default:
		return fmt.Errorf("%w: unknown class %q", domain.ErrInvalidInput, termsClass)
	}

	records, err := corpusService.Terms(commandContext(cmd))
	if err != nil {
		return err
	}

	count := 0
	for i := range records {
		rec := &records[i]
		class := rec.Class().String()
		if termsClass != "" && class != termsClass {
			continue
		}
		cmd.Printf("  %-24s %-9s %s\n", rec.Key, class, rec.Title())
		count++
	}
	cmd.Printf("\n%d entries\n", count)
	return nil
}
