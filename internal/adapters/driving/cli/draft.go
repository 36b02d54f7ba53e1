package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Manage saved answer drafts",
	Long:  `Save assistant answers for later reuse, list them, show or remove them.`,
}

var draftSaveCmd = &cobra.Command{
	Use:   "save [text|-]",
	Short: "Save a draft",
	Long:  `Saves the given text as a new draft. Use - or no argument to read stdin.`,
	RunE:  runDraftSave,
}

var draftListCmd = &cobra.Command{
	Use:   "list",
	Short: "List drafts, newest first",
	Args:  cobra.NoArgs,
	RunE:  runDraftList,
}

var draftShowCmd = &cobra.Command{
	Use:   "show [draft-id]",
	Short: "Print a draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftShow,
}

var draftRemoveCmd = &cobra.Command{
	Use:     "rm [draft-id]",
	Aliases: []string{"remove"},
	Short:   "Remove a draft",
	Args:    cobra.ExactArgs(1),
	RunE:    runDraftRemove,
}

// draftPreviewLen is the number of runes shown per draft in list output.
const draftPreviewLen = 60

func init() {
	draftCmd.AddCommand(draftSaveCmd)
	draftCmd.AddCommand(draftListCmd)
	draftCmd.AddCommand(draftShowCmd)
	draftCmd.AddCommand(draftRemoveCmd)
	rootCmd.AddCommand(draftCmd)
}

func runDraftSave(cmd *cobra.Command, args []string) error {
	if draftService == nil {
		return errors.New("draft service not configured")
	}

	text := strings.Join(args, " ")
	if len(args) == 0 || text == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read draft: %w", err)
		}
		text = string(data)
	}

	draft, err := draftService.Save(commandContext(cmd), text)
	if err != nil {
		return err
	}
	cmd.Printf("Saved draft %s\n", draft.ID)
	return nil
}

func runDraftList(cmd *cobra.Command, _ []string) error {
	if draftService == nil {
		return errors.New("draft service not configured")
	}

	drafts, err := draftService.List(commandContext(cmd))
	if err != nil {
		return err
	}
	if len(drafts) == 0 {
		cmd.Println("No drafts saved.")
		return nil
	}

	for i := range drafts {
		d := &drafts[i]
		cmd.Printf("  %s  %s  %s\n", d.ID, d.CreatedAt.Local().Format("2006-01-02 15:04"), preview(d.Text))
	}
	return nil
}

func runDraftShow(cmd *cobra.Command, args []string) error {
	if draftService == nil {
		return errors.New("draft service not configured")
	}

	draft, err := draftService.Get(commandContext(cmd), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), draft.Text)
	return nil
}

func runDraftRemove(cmd *cobra.Command, args []string) error {
	if draftService == nil {
		return errors.New("draft service not configured")
	}

	if err := draftService.Delete(commandContext(cmd), args[0]); err != nil {
		return err
	}
	cmd.Printf("Removed draft %s\n", args[0])
	return nil
}

// preview returns the first line of text, shortened to draftPreviewLen runes.
func preview(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	runes := []rune(line)
	if len(runes) > draftPreviewLen {
		return string(runes[:draftPreviewLen-1]) + "…"
	}
	return line
}
