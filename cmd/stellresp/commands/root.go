// Package commands holds the stellresp command tree.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "stellresp",
		Short:         "Uniform JSON response envelopes for HTTP APIs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		NewServeCommand(),
		NewRenderCommand(),
		NewVersionCommand(),
	)

	return rootCmd
}
