package engine

import (
	"context"

	giddyerrors "giddy.dev/giddy/internal/errors"
)

// UpdateRecursive reconciles a branch and everything it transitively
// depends on, dependencies first. Each branch is visited at most once, so
// diamond-shaped graphs rebase shared dependencies a single time. The
// cascade halts on the first error, leaving already-reconciled branches
// in their updated state.
func (e *Engine) UpdateRecursive(ctx context.Context, branchName string) error {
	graph, err := e.BuildGraph()
	if err != nil {
		return err
	}
	if !graph.HasNode(branchName) {
		return giddyerrors.NewUnknownBranchError(branchName)
	}

	visited := make(map[string]bool)
	return e.updateDepsFirst(ctx, graph, branchName, visited)
}

func (e *Engine) updateDepsFirst(ctx context.Context, graph *Graph, branchName string, visited map[string]bool) error {
	if visited[branchName] {
		return nil
	}
	visited[branchName] = true

	deps, err := graph.DependenciesOf(branchName)
	if err != nil {
		return err
	}
	for _, dep := range deps {
		if err := e.updateDepsFirst(ctx, graph, dep, visited); err != nil {
			return err
		}
	}

	_, err = e.UpdateBranch(ctx, branchName)
	return err
}

// NewBranch creates a branch off the current one and records the
// dependency. Branching off the default branch records nothing: the
// implicit default dependency already covers it.
func (e *Engine) NewBranch(ctx context.Context, name string) error {
	parent, err := e.git.CurrentBranchName()
	if err != nil {
		return err
	}

	if err := e.git.CreateBranch(ctx, name); err != nil {
		return err
	}

	if parent == e.trunk {
		return nil
	}

	state, err := e.store.Load(name)
	if err != nil {
		return err
	}
	state.AddDep(parent)
	state.Base = &parent
	return e.store.Save(name, state)
}
