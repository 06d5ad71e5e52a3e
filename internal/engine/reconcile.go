package engine

import (
	"context"

	giddyerrors "giddy.dev/giddy/internal/errors"
)

// UpdateResult describes the outcome of reconciling a single branch
type UpdateResult int

const (
	// UpdateUnneeded means the branch was already consistent with its dependency
	UpdateUnneeded UpdateResult = iota
	// UpdateDone means the branch was rebased
	UpdateDone
)

// IsDirty reports whether the branch tip was produced by a rebase not yet
// confirmed consistent.
func (e *Engine) IsDirty(branchName string) (bool, error) {
	state, err := e.LoadState(branchName)
	if err != nil {
		return false, err
	}
	return state.Dirty, nil
}

// IsEqual reports whether two branches point at the same commit
func (e *Engine) IsEqual(branchName, otherName string) (bool, error) {
	head, err := e.git.HeadCommit(branchName)
	if err != nil {
		return false, err
	}
	otherHead, err := e.git.HeadCommit(otherName)
	if err != nil {
		return false, err
	}
	return head == otherHead, nil
}

// IsMerged reports whether the branch has been fully merged into the
// branch it was last rebased onto.
func (e *Engine) IsMerged(branchName string) (bool, error) {
	state, err := e.LoadState(branchName)
	if err != nil {
		return false, err
	}
	if state.Base == nil {
		return false, nil
	}
	return e.git.IsMergedInto(branchName, *state.Base)
}

// NeedsUpdate reports whether a branch has drifted from any of its
// persisted dependencies: a dependency whose tip moved past the recorded
// fork point, or a fork point that can no longer be resolved.
func (e *Engine) NeedsUpdate(ctx context.Context, branchName string) (bool, error) {
	state, err := e.LoadState(branchName)
	if err != nil {
		return false, err
	}

	for _, dep := range state.Deps {
		forkPoint, found, err := e.git.ForkPoint(ctx, branchName, dep)
		if err != nil {
			return false, err
		}
		if !found {
			// No fork point usually means the base branch or deps changed
			return true, nil
		}

		depHead, err := e.git.HeadCommit(dep)
		if err != nil {
			return false, err
		}
		if depHead != forkPoint {
			return true, nil
		}
	}

	return false, nil
}

// UpdateBranch reconciles one branch against its dependency. The decision
// order matters: the declared dependency set is normalized first, then a
// base change takes precedence over drift, then the fork-point check
// decides between rebasing and doing nothing.
func (e *Engine) UpdateBranch(ctx context.Context, branchName string) (UpdateResult, error) {
	state, err := e.LoadState(branchName)
	if err != nil {
		return UpdateUnneeded, err
	}

	deps := e.EffectiveDeps(branchName, &state)
	if len(deps) == 0 {
		e.splog.Info("branch `%s` does not have deps, no update needed", branchName)
		return UpdateUnneeded, nil
	}

	// An explicit dependency makes an implicit default-branch entry
	// redundant; drop it from the persisted set before going further.
	if len(deps) > 1 && state.HasDep(e.trunk) {
		state.RemoveDep(e.trunk)
		if err := e.store.Save(branchName, state); err != nil {
			return UpdateUnneeded, err
		}
		deps = e.EffectiveDeps(branchName, &state)
	}

	if len(deps) > 1 {
		return UpdateUnneeded, giddyerrors.NewMultipleDependenciesError(branchName, deps)
	}

	dep := deps[0]

	// Base change: the branch was last rebased onto a different branch than
	// its current dependency. Transplant the commits made since the old
	// base; drift against the new base is picked up on the next update.
	if state.Base != nil && *state.Base != dep {
		previous := *state.Base
		e.splog.Info("branch `%s`: rebasing from `%s` onto `%s`...", branchName, previous, dep)

		if err := e.git.RebaseOnto(ctx, branchName, previous, dep); err != nil {
			return UpdateUnneeded, err
		}

		state.Base = &dep
		state.Dirty = false
		if err := e.store.Save(branchName, state); err != nil {
			return UpdateDone, err
		}
		return UpdateDone, nil
	}

	depHead, err := e.git.HeadCommit(dep)
	if err != nil {
		return UpdateUnneeded, err
	}

	forkPoint, found, err := e.git.ForkPoint(ctx, branchName, dep)
	if err != nil {
		return UpdateUnneeded, err
	}

	var skipUpdate bool
	if found {
		skipUpdate = depHead == forkPoint
	} else {
		// No fork point. The branch may still be trivially consistent:
		// same tip as the dependency, already contained in it, or merged.
		equal, err := e.IsEqual(branchName, dep)
		if err != nil {
			return UpdateUnneeded, err
		}

		skipUpdate = equal
		if !skipUpdate {
			contained, err := e.git.Contains(dep, branchName)
			if err != nil {
				return UpdateUnneeded, err
			}
			skipUpdate = contained
		}
		if !skipUpdate {
			merged, err := e.git.IsMergedInto(branchName, dep)
			if err != nil {
				return UpdateUnneeded, err
			}
			skipUpdate = merged
		}
	}

	switch {
	case skipUpdate:
		e.splog.Info("branch `%s`: no update needed", branchName)
		return UpdateUnneeded, nil
	case found:
		e.splog.Info("rebasing branch `%s` on `%s`...", branchName, dep)
		if err := e.git.RebaseOnto(ctx, branchName, forkPoint, dep); err != nil {
			return UpdateUnneeded, err
		}
		return UpdateDone, nil
	default:
		return UpdateUnneeded, giddyerrors.NewUnresolvableForkPointError(branchName, dep)
	}
}
