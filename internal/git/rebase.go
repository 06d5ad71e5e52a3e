package git

import (
	"context"
	"os"

	giddyerrors "giddy.dev/giddy/internal/errors"
)

// RebaseOnto replays the commits between oldBase and branchName's tip onto
// newBase's current tip. On conflict the rebase is left in progress for the
// user to resolve or abort, and a RebaseConflictError is returned.
func RebaseOnto(ctx context.Context, branchName, oldBase, newBase string) error {
	_, err := RunGitCommandWithContext(ctx, "rebase", "--onto", newBase, oldBase, branchName)
	if err != nil {
		if IsRebaseInProgress(ctx) {
			return giddyerrors.NewRebaseConflictError(branchName, newBase)
		}
		return err
	}
	return nil
}

// IsRebaseInProgress checks if a rebase is currently in progress
func IsRebaseInProgress(ctx context.Context) bool {
	// Check for rebase-merge or rebase-apply under the git dir; this is more
	// reliable than REBASE_HEAD, which can persist after a finished rebase
	gitDir, err := RunGitCommandWithContext(ctx, "rev-parse", "--git-dir")
	if err != nil {
		return false
	}

	if _, err := os.Stat(gitDir + "/rebase-merge"); err == nil {
		return true
	}
	if _, err := os.Stat(gitDir + "/rebase-apply"); err == nil {
		return true
	}
	return false
}

// CreateAndSwitchBranch creates a new branch at HEAD and switches to it
func CreateAndSwitchBranch(ctx context.Context, name string) error {
	_, err := RunGitCommandWithContext(ctx, "switch", "--create", name)
	return err
}
