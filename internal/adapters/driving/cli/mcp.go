package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexa-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/lexa-cli/internal/logger"
)

var (
	mcpPort      int
	mcpRateLimit float64
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server exposing the glossary to AI assistants.

Tools:
  search_terms    typo-tolerant glossary search
  annotate_html   wrap recognised terms in an HTML answer
  get_article     summary and full text of one entry

Resources:
  lexa://terms              every corpus entry
  lexa://articles/{key}     one entry as text

By default the server speaks JSON-RPC over stdio. Use --port to serve
streamable HTTP instead, rate limited per server.

Examples:
  lexa mcp serve
  lexa mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Float64Var(&mcpRateLimit, "rate", mcp.DefaultRateLimit.RequestsPerSecond,
		"HTTP requests per second before 429 responses")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)

	ports := &mcp.Ports{
		Search:     searchService,
		Annotation: annotationService,
		Article:    articleService,
		Corpus:     corpusService,
	}

	limit := mcp.DefaultRateLimit
	if mcpRateLimit > 0 {
		limit.RequestsPerSecond = mcpRateLimit
	}

	server, err := mcp.NewServer(ports, mcp.WithRateLimit(limit))
	if err != nil {
		return err
	}

	if watchCorpus && corpusService != nil {
		if err := corpusService.Watch(ctx); err != nil {
			return fmt.Errorf("watching corpus: %w", err)
		}
	}

	if mcpPort > 0 {
		if mcpPort > 65535 {
			return errors.New("port must be between 1 and 65535")
		}
		addr := fmt.Sprintf(":%d", mcpPort)
		logger.Info("MCP server listening on http://localhost%s", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
