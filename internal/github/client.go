// Package github looks up pull request information for branches. Review
// data is display-only; reconciliation never depends on it.
package github

import "context"

// PullRequestInfo is the subset of review data giddy displays
type PullRequestInfo struct {
	Number int
	Title  string
	State  string // "open", "closed", "merged"
	URL    string
	Draft  bool
}

// Client fetches pull request information
type Client interface {
	// PullRequestForBranch returns the PR whose head is the given branch,
	// or nil if there is none.
	PullRequestForBranch(ctx context.Context, branchName string) (*PullRequestInfo, error)

	// PullRequest returns the PR with the given number
	PullRequest(ctx context.Context, number int) (*PullRequestInfo, error)
}
