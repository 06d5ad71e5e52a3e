// Package cli wires the giddy commands.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "giddy",
		Short:   "Giddy manages stacks of dependent git branches",
		Version: version,
		Long: `Giddy manages stacks of dependent git branches.

Declare which branch a branch depends on, and giddy rebases dependents
when their dependencies move, walking the whole dependency graph in
order.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newDelCmd())
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newUpdateCmd())

	return rootCmd
}
