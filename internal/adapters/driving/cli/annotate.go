package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/lexa-cli/internal/adapters/driven/markup/html"
	"github.com/custodia-labs/lexa-cli/internal/adapters/driven/markup/terminal"
	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

// Output formats for annotate.
const (
	formatAuto     = "auto"
	formatHTML     = "html"
	formatText     = "text"
	formatTerminal = "terminal"
)

// maxAnnotateInput caps how much input annotate reads.
const maxAnnotateInput = 8 << 20

var (
	annotateFormat string
	annotateInput  string
)

var annotateCmd = &cobra.Command{
	Use:   "annotate [file|-]",
	Short: "Annotate legal terms in an answer",
	Long: `Reads an assistant answer (HTML by default) from a file or stdin and
wraps every recognised legal term and statute citation.

Known terms carry their summary, and articles also carry a full-text action
and a source search link. Terms inside links, code and emphasis are left
alone. Annotating an already annotated answer changes nothing.

Output formats:
  html      annotated HTML with tooltip data in attributes
  terminal  highlighted text with numbered footnotes
  text      the terminal layout without styling
  auto      terminal when stdout is a terminal, html otherwise`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnnotate,
}

func init() {
	annotateCmd.Flags().StringVarP(&annotateFormat, "format", "f", formatAuto, "output format: html, text, terminal or auto")
	annotateCmd.Flags().StringVarP(&annotateInput, "input", "i", formatHTML, "input format: html or text")
	rootCmd.AddCommand(annotateCmd)
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	if annotationService == nil {
		return errors.New("annotation service not configured")
	}

	format, err := resolveFormat(annotateFormat, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	src, err := readAnnotateInput(cmd, args)
	if err != nil {
		return err
	}

	var root *domain.Node
	switch annotateInput {
	case formatHTML:
		root, err = html.ParseString(src)
		if err != nil {
			return err
		}
	case formatText:
		root = textToTree(src)
	default:
		return fmt.Errorf("%w: unknown input format %q", domain.ErrInvalidInput, annotateInput)
	}

	annotated, err := annotationService.Annotate(commandContext(cmd), root)
	if err != nil {
		return fmt.Errorf("annotate failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case formatHTML:
		if err := html.Render(out, annotated); err != nil {
			return err
		}
		_, err = fmt.Fprintln(out)
		return err
	case formatTerminal:
		return terminal.NewRenderer(terminal.DefaultStyles()).Render(out, annotated)
	default:
		return terminal.NewPlainRenderer().Render(out, annotated)
	}
}

// resolveFormat validates the requested format and resolves auto against
// the output writer.
func resolveFormat(format string, w io.Writer) (string, error) {
	switch format {
	case formatHTML, formatText, formatTerminal:
		return format, nil
	case formatAuto:
		if isTerminal(w) {
			return formatTerminal, nil
		}
		return formatHTML, nil
	default:
		return "", fmt.Errorf("%w: unknown output format %q", domain.ErrInvalidInput, format)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func readAnnotateInput(cmd *cobra.Command, args []string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, maxAnnotateInput+1))
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if len(data) > maxAnnotateInput {
		return "", fmt.Errorf("%w: input exceeds %d bytes", domain.ErrInvalidInput, maxAnnotateInput)
	}
	return string(data), nil
}

// textToTree turns plain text into a fragment of paragraphs, one per block
// separated by blank lines.
func textToTree(src string) *domain.Node {
	root := domain.NewFragment()
	for _, block := range strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		root.Children = append(root.Children, domain.NewElement("p", domain.NewText(block)))
	}
	return root
}
