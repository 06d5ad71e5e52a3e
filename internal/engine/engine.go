package engine

import (
	"fmt"

	"giddy.dev/giddy/internal/config"
	"giddy.dev/giddy/internal/git"
	"giddy.dev/giddy/internal/output"
)

// Engine coordinates the dependency graph, the state store, and the
// version-control backend. It is single-threaded and synchronous: every
// backend query or rebase completes before the next step proceeds.
type Engine struct {
	git   git.Backend
	store Store
	splog *output.Splog
	trunk string
}

// NewEngine creates an engine wired to the real git backend and the
// file-based state store of the enclosing repository.
func NewEngine(repoRoot string) (*Engine, error) {
	if err := git.InitDefaultRepo(); err != nil {
		return nil, fmt.Errorf("failed to initialize git repository: %w", err)
	}

	trunk, err := config.GetDefaultBranch(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve default branch: %w", err)
	}

	backend := git.NewRealBackend()
	gitDir, err := backend.GitDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate git dir: %w", err)
	}

	store, err := NewFileStore(gitDir)
	if err != nil {
		return nil, err
	}

	return NewEngineWith(backend, store, trunk, output.NewSplog()), nil
}

// NewEngineWith creates an engine from explicit collaborators. Tests use
// this to substitute a fake backend and store.
func NewEngineWith(backend git.Backend, store Store, trunk string, splog *output.Splog) *Engine {
	return &Engine{
		git:   backend,
		store: store,
		splog: splog,
		trunk: trunk,
	}
}

// DefaultBranch returns the repository's default branch name
func (e *Engine) DefaultBranch() string {
	return e.trunk
}

// CurrentBranch returns the currently checked-out branch name
func (e *Engine) CurrentBranch() (string, error) {
	return e.git.CurrentBranchName()
}

// LoadState loads the persisted state for a branch, applying the declared
// base default: any branch other than the default branch that was never
// reconciled is treated as based on the default branch.
func (e *Engine) LoadState(branchName string) (BranchState, error) {
	state, err := e.store.Load(branchName)
	if err != nil {
		return state, err
	}
	if state.Base == nil && branchName != e.trunk {
		trunk := e.trunk
		state.Base = &trunk
	}
	return state, nil
}

// EffectiveDeps computes the dependencies reconciliation works against:
// an empty persisted set means the default branch, except for the default
// branch itself, which depends on nothing and is never reconciled.
func (e *Engine) EffectiveDeps(branchName string, state *BranchState) []string {
	if len(state.Deps) > 0 {
		return state.Deps
	}
	if branchName == e.trunk {
		return nil
	}
	return []string{e.trunk}
}

// BuildGraph assembles the dependency DAG from every branch's persisted
// state. Edges pointing at branches that no longer exist are skipped with
// a warning; stale references must not block other operations.
func (e *Engine) BuildGraph() (*Graph, error) {
	names, err := e.git.ListBranchNames()
	if err != nil {
		return nil, err
	}

	graph := NewGraph()
	for _, name := range names {
		graph.AddNode(name)
	}

	for _, name := range names {
		state, err := e.LoadState(name)
		if err != nil {
			return nil, err
		}
		for _, dep := range e.EffectiveDeps(name, &state) {
			if !graph.HasNode(dep) {
				e.splog.Warn("branch `%s` depends on non-existing branch `%s`", name, dep)
				continue
			}
			if err := graph.TryAddEdge(name, dep); err != nil {
				return nil, err
			}
		}
	}

	return graph, nil
}

// AddDeps declares new dependencies for a branch, validating each edge
// against the full DAG before anything is persisted.
func (e *Engine) AddDeps(branchName string, deps []string) error {
	graph, err := e.BuildGraph()
	if err != nil {
		return err
	}

	state, err := e.LoadState(branchName)
	if err != nil {
		return err
	}

	for _, dep := range deps {
		if err := graph.TryAddEdge(branchName, dep); err != nil {
			return err
		}
		if state.AddDep(dep) {
			e.splog.Info("adding dependency `%s` to branch `%s`", dep, branchName)
		}
	}

	return e.store.Save(branchName, state)
}

// RemoveDeps removes dependencies from a branch and returns the names
// actually removed. Absent names are reported, not errors.
func (e *Engine) RemoveDeps(branchName string, deps []string) ([]string, error) {
	state, err := e.LoadState(branchName)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, dep := range deps {
		if state.RemoveDep(dep) {
			removed = append(removed, dep)
		} else {
			e.splog.Warn("branch `%s` does not depend on `%s`", branchName, dep)
		}
	}

	if len(removed) == 0 {
		return nil, nil
	}
	return removed, e.store.Save(branchName, state)
}
