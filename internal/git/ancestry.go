package git

import (
	"context"
	"fmt"
)

// GetAllBranchNames returns all local branch names in the repository
func GetAllBranchNames() ([]string, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return nil, err
	}
	return repo.GetBranchNames()
}

// GetCurrentBranch returns the current branch name
func GetCurrentBranch() (string, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return "", err
	}
	return repo.GetCurrentBranch()
}

// HeadCommit returns the tip commit hash of a branch
func HeadCommit(branchName string) (string, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return "", err
	}

	hash, err := resolveRefHash(repo, branchName)
	if err != nil {
		return "", err
	}
	return hash.String(), nil
}

// IsAncestor checks if the first ref's tip is an ancestor of the second ref's tip
func IsAncestor(ancestor, descendant string) (bool, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return false, err
	}

	ancestorHash, err := resolveRefHash(repo, ancestor)
	if err != nil {
		return false, err
	}
	descendantHash, err := resolveRefHash(repo, descendant)
	if err != nil {
		return false, err
	}

	if ancestorHash == descendantHash {
		return true, nil
	}

	ancestorCommit, err := repo.CommitObject(ancestorHash)
	if err != nil {
		return false, fmt.Errorf("failed to get ancestor commit: %w", err)
	}
	descendantCommit, err := repo.CommitObject(descendantHash)
	if err != nil {
		return false, fmt.Errorf("failed to get descendant commit: %w", err)
	}

	return ancestorCommit.IsAncestor(descendantCommit)
}

// ForkPoint returns the fork point of branchName relative to baseName, the
// commit the two histories last shared when they diverged. The boolean is
// false when git cannot determine one, e.g. after the base was rewritten.
// go-git has no fork-point support (it needs reflog heuristics), so this
// stays on the CLI.
func ForkPoint(ctx context.Context, branchName, baseName string) (string, bool, error) {
	output, err := RunGitCommandWithContext(ctx, "merge-base", "--fork-point", baseName, branchName)
	if err != nil || output == "" {
		// git exits non-zero when no fork point exists
		return "", false, nil
	}
	return output, true, nil
}
