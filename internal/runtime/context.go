// Package runtime provides the context type that holds the engine and
// logger for use throughout the command layer.
package runtime

import (
	"context"
	"fmt"

	"giddy.dev/giddy/internal/engine"
	"giddy.dev/giddy/internal/git"
	"giddy.dev/giddy/internal/github"
	"giddy.dev/giddy/internal/output"
)

// Context provides access to the engine and output for commands
type Context struct {
	Engine   *engine.Engine
	Splog    *output.Splog
	RepoRoot string

	// GitHub is nil when no token or remote is available; commands that
	// display review data degrade gracefully.
	GitHub github.Client
}

// GetContext builds the runtime context for the repository containing the
// working directory.
func GetContext() (*Context, error) {
	if err := git.InitDefaultRepo(); err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to get repo root: %w", err)
	}

	eng, err := engine.NewEngine(repoRoot)
	if err != nil {
		return nil, err
	}

	rctx := &Context{
		Engine:   eng,
		Splog:    output.NewSplog(),
		RepoRoot: repoRoot,
	}

	// Best effort: review lookups are optional
	if ghClient, err := github.NewRealClient(context.Background()); err == nil {
		rctx.GitHub = ghClient
	}

	return rctx, nil
}
