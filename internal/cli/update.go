package cli

import (
	"github.com/spf13/cobra"

	"giddy.dev/giddy/internal/cli/helpers"
	"giddy.dev/giddy/internal/runtime"
)

// newUpdateCmd creates the update command
func newUpdateCmd() *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "update [branch]",
		Short: "Rebase a branch onto its dependency if the dependency moved",
		Long: `Rebase a branch onto its dependency if the dependency moved.

Defaults to the current branch. With --recursive, everything the branch
transitively depends on is updated first, dependencies before
dependents.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				var branchName string
				if len(args) > 0 {
					branchName = args[0]
				} else {
					current, err := ctx.Engine.CurrentBranch()
					if err != nil {
						return err
					}
					branchName = current
				}

				if recursive {
					return ctx.Engine.UpdateRecursive(cmd.Context(), branchName)
				}

				_, err := ctx.Engine.UpdateBranch(cmd.Context(), branchName)
				return err
			})
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Update dependencies first, in dependency order")

	return cmd
}
