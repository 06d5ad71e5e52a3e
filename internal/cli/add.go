package cli

import (
	"github.com/spf13/cobra"

	"giddy.dev/giddy/internal/cli/helpers"
	"giddy.dev/giddy/internal/runtime"
)

// newAddCmd creates the add command
func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <branch>...",
		Short: "Add dependencies to the current branch",
		Long: `Add dependencies to the current branch.

Each named branch must exist, and the resulting dependency graph must
stay acyclic; otherwise nothing is recorded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				branchName, err := ctx.Engine.CurrentBranch()
				if err != nil {
					return err
				}
				return ctx.Engine.AddDeps(branchName, args)
			})
		},
	}
}
