package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"giddy.dev/giddy/internal/cli/helpers"
	"giddy.dev/giddy/internal/runtime"
)

// newNewCmd creates the new command
func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new [name]",
		Short: "Create a branch that depends on the current branch",
		Long: `Create a branch off the current branch and switch to it.

Unless the current branch is the default branch, the new branch records
a dependency on it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				var name string
				if len(args) > 0 {
					name = args[0]
				} else {
					prompt := &survey.Input{
						Message: "Choose a name for the new branch",
					}
					if err := survey.AskOne(prompt, &name, survey.WithValidator(survey.Required)); err != nil {
						return fmt.Errorf("canceled")
					}
				}

				return ctx.Engine.NewBranch(cmd.Context(), name)
			})
		},
	}
}
