// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: All subcommands hang off NewRootCmd so tests can build a fresh tree
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
 ██████ ███████  █████  ██████   █████   ██████
██      ██      ██   ██ ██   ██ ██   ██ ██
██      █████   ███████ ██████  ███████ ██   ███
██      ██      ██   ██ ██   ██ ██   ██ ██    ██
 ██████ ██      ██   ██ ██   ██ ██   ██  ██████
`

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cfarag",
		Short: "CFA course knowledge index and retrieval",
		Long: banner + `
cfarag builds and queries a static retrieval index over CFA course
material: chunked passages, OpenAI embeddings, keyword posting lists
and French query translation, served from plain JSON files.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewBuildCmd(),
		NewSearchCmd(),
		NewTranslateCmd(),
		NewStatsCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
