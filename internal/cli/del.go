package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"giddy.dev/giddy/internal/cli/helpers"
	"giddy.dev/giddy/internal/runtime"
)

// newDelCmd creates the del command
func newDelCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "del <branch>...",
		Short: "Remove dependencies from the current branch",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				branchName, err := ctx.Engine.CurrentBranch()
				if err != nil {
					return err
				}

				if !force {
					var confirmed bool
					prompt := &survey.Confirm{
						Message: fmt.Sprintf("Remove %s from the dependencies of %s?", strings.Join(args, ", "), branchName),
						Default: false,
					}
					if err := survey.AskOne(prompt, &confirmed); err != nil {
						return fmt.Errorf("canceled")
					}
					if !confirmed {
						return nil
					}
				}

				removed, err := ctx.Engine.RemoveDeps(branchName, args)
				if err != nil {
					return err
				}
				for _, dep := range removed {
					ctx.Splog.Info("removed dependency `%s` from branch `%s`", dep, branchName)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
