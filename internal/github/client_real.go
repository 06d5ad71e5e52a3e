package github

import (
	"context"
	"fmt"
	"os"
	"strings"

	gogithub "github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"giddy.dev/giddy/internal/git"
)

// RealClient implements Client against the GitHub API
type RealClient struct {
	client *gogithub.Client
	owner  string
	repo   string
}

// NewRealClient creates a client authenticated from the environment and
// pointed at the repository behind the origin remote.
func NewRealClient(ctx context.Context) (*RealClient, error) {
	token, err := getToken()
	if err != nil {
		return nil, err
	}

	owner, repo, err := getRepoInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository info: %w", err)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &RealClient{
		client: gogithub.NewClient(tc),
		owner:  owner,
		repo:   repo,
	}, nil
}

// PullRequestForBranch returns the PR whose head is the given branch
func (c *RealClient) PullRequestForBranch(ctx context.Context, branchName string) (*PullRequestInfo, error) {
	prs, _, err := c.client.PullRequests.List(ctx, c.owner, c.repo, &gogithub.PullRequestListOptions{
		Head:  fmt.Sprintf("%s:%s", c.owner, branchName),
		State: "all",
		ListOptions: gogithub.ListOptions{
			PerPage: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests for %s: %w", branchName, err)
	}
	if len(prs) == 0 {
		return nil, nil
	}
	return toPullRequestInfo(prs[0]), nil
}

// PullRequest returns the PR with the given number
func (c *RealClient) PullRequest(ctx context.Context, number int) (*PullRequestInfo, error) {
	pr, _, err := c.client.PullRequests.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get pull request #%d: %w", number, err)
	}
	return toPullRequestInfo(pr), nil
}

func toPullRequestInfo(pr *gogithub.PullRequest) *PullRequestInfo {
	info := &PullRequestInfo{
		Number: pr.GetNumber(),
		Title:  pr.GetTitle(),
		State:  pr.GetState(),
		URL:    pr.GetHTMLURL(),
		Draft:  pr.GetDraft(),
	}
	if pr.GetMerged() || pr.MergedAt != nil {
		info.State = "merged"
	}
	return info
}

func getToken() (string, error) {
	if token := os.Getenv("GIDDY_GITHUB_TOKEN"); token != "" {
		return token, nil
	}
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}
	return "", fmt.Errorf("no GitHub token found, set GIDDY_GITHUB_TOKEN or GITHUB_TOKEN")
}

// getRepoInfo parses owner and repo name from the origin remote URL.
// Handles both https and ssh formats:
//
//	https://github.com/owner/repo.git
//	git@github.com:owner/repo.git
func getRepoInfo(ctx context.Context) (string, string, error) {
	url, err := git.RunGitCommandWithContext(ctx, "config", "--get", "remote.origin.url")
	if err != nil {
		return "", "", err
	}

	url = strings.TrimSuffix(strings.TrimSpace(url), ".git")

	if at := strings.Index(url, "@"); at >= 0 {
		// SSH format
		rest := url[at+1:]
		colon := strings.Index(rest, ":")
		if colon < 0 {
			return "", "", fmt.Errorf("invalid remote URL: %s", url)
		}
		parts := strings.Split(rest[colon+1:], "/")
		if len(parts) < 2 {
			return "", "", fmt.Errorf("invalid remote URL: %s", url)
		}
		return parts[0], parts[len(parts)-1], nil
	}

	parts := strings.Split(url, "/")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("invalid remote URL: %s", url)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}
