package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"giddy.dev/giddy/internal/cli/helpers"
	"giddy.dev/giddy/internal/engine"
	"giddy.dev/giddy/internal/git"
	"giddy.dev/giddy/internal/github"
	"giddy.dev/giddy/internal/output"
	"giddy.dev/giddy/internal/runtime"
)

// newShowCmd creates the show command
func newShowCmd() *cobra.Command {
	var (
		tree bool
		prs  bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show branch dependency status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				if tree {
					return showTree(cmd, ctx, prs)
				}
				return showCurrent(ctx)
			})
		},
	}

	cmd.Flags().BoolVarP(&tree, "tree", "t", false, "Show the full dependency tree")
	cmd.Flags().BoolVarP(&prs, "prs", "p", false, "Include pull request status (requires --tree)")

	return cmd
}

func showCurrent(ctx *runtime.Context) error {
	gitDir, err := git.GetGitDir()
	if err != nil {
		return err
	}

	branchName, err := ctx.Engine.CurrentBranch()
	if err != nil {
		return err
	}

	state, err := ctx.Engine.LoadState(branchName)
	if err != nil {
		return err
	}

	ctx.Splog.Info("git dir: %s", gitDir)
	ctx.Splog.Info("current branch: %s", branchName)
	ctx.Splog.Info("          deps: %s", strings.Join(state.Deps, ", "))
	ctx.Splog.Info("default branch: %s", ctx.Engine.DefaultBranch())

	dirty, err := ctx.Engine.IsDirty(branchName)
	if err != nil {
		return err
	}
	if dirty {
		ctx.Splog.Warn("branch `%s` has a dirty tip from an unconfirmed rebase", branchName)
	}
	return nil
}

func showTree(cmd *cobra.Command, ctx *runtime.Context, prs bool) error {
	graph, err := ctx.Engine.BuildGraph()
	if err != nil {
		return err
	}

	currentBranch, err := ctx.Engine.CurrentBranch()
	if err != nil {
		return err
	}

	reversed := graph.Reversed()
	renderer := output.NewTreeRenderer(currentBranch, func(branchName string) []string {
		dependents, err := reversed.DependenciesOf(branchName)
		if err != nil {
			return nil
		}
		return dependents
	})

	if prs && ctx.GitHub == nil {
		ctx.Splog.Warn("no GitHub access, PR status omitted")
		prs = false
	}

	for _, branchName := range graph.Nodes() {
		annotation, err := annotateBranch(cmd, ctx, branchName, prs)
		if err != nil {
			return err
		}
		renderer.SetAnnotation(branchName, annotation)
	}

	ctx.Splog.Page(renderer.Render(ctx.Engine.DefaultBranch()))
	return nil
}

func annotateBranch(cmd *cobra.Command, ctx *runtime.Context, branchName string, prs bool) (output.BranchAnnotation, error) {
	var annotation output.BranchAnnotation

	state, err := ctx.Engine.LoadState(branchName)
	if err != nil {
		return annotation, err
	}
	annotation.Dirty = state.Dirty
	annotation.ReviewRef = state.ReviewRef

	needsUpdate, err := ctx.Engine.NeedsUpdate(cmd.Context(), branchName)
	if err != nil {
		return annotation, err
	}
	annotation.NeedsUpdate = needsUpdate

	if branchName != ctx.Engine.DefaultBranch() {
		merged, err := ctx.Engine.IsMerged(branchName)
		if err != nil {
			return annotation, err
		}
		annotation.Merged = merged
	}

	if prs {
		info, err := lookupPR(cmd, ctx, branchName, state)
		if err == nil && info != nil {
			annotation.ReviewRef = &info.Number
			annotation.ReviewState = info.State
		}
	}

	return annotation, nil
}

func lookupPR(cmd *cobra.Command, ctx *runtime.Context, branchName string, state engine.BranchState) (*github.PullRequestInfo, error) {
	if state.ReviewRef != nil {
		return ctx.GitHub.PullRequest(cmd.Context(), *state.ReviewRef)
	}
	return ctx.GitHub.PullRequestForBranch(cmd.Context(), branchName)
}
