// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Defines the docrag command tree and shared output settings
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
██████╗  ██████╗  ██████╗██████╗  █████╗  ██████╗
██╔══██╗██╔═══██╗██╔════╝██╔══██╗██╔══██╗██╔════╝
██║  ██║██║   ██║██║     ██████╔╝███████║██║  ███╗
██║  ██║██║   ██║██║     ██╔══██╗██╔══██║██║   ██║
██████╔╝╚██████╔╝╚██████╗██║  ██║██║  ██║╚██████╔╝
╚═════╝  ╚═════╝  ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝
`

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docrag",
		Short: "Ask questions about your documents",
		Long: banner + `
docrag extracts text from PDF and plain-text documents, splits it into
overlapping chunks, embeds them with OpenAI, and answers questions
grounded in the most similar passages.

Requires OPENAI_API_KEY (via environment or .env file) for commands
that embed or generate.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format (auto, json, table)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewAskCmd())
	cmd.AddCommand(NewRetrieveCmd())
	cmd.AddCommand(NewChunksCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
