// Package engine implements the core of giddy: the branch dependency
// graph, the per-branch persisted state, and the reconciliation (rebase)
// workflow that keeps dependent branches based on their dependencies.
package engine

import "slices"

// BranchState is the persisted annotation for one branch.
type BranchState struct {
	// Deps is the ordered set of branch names this branch depends on.
	// Insertion order is preserved for display; only zero or one entry is
	// operationally supported by reconciliation.
	Deps []string `json:"deps"`

	// ReviewRef is an optional external review (PR) number, opaque here.
	ReviewRef *int `json:"pr,omitempty"`

	// Base is the dependency this branch was last successfully rebased
	// onto. nil means never reconciled. Distinct from Deps, which is what
	// the user currently wants.
	Base *string `json:"base,omitempty"`

	// Dirty marks a tip produced by a rebase not yet confirmed consistent.
	// It is cleared when a rebase onto a new base completes.
	Dirty bool `json:"dirty"`
}

// HasDep reports whether name is among the branch's dependencies
func (s *BranchState) HasDep(name string) bool {
	return slices.Contains(s.Deps, name)
}

// AddDep appends name to the dependency set, preserving uniqueness.
// It reports whether the set changed.
func (s *BranchState) AddDep(name string) bool {
	if s.HasDep(name) {
		return false
	}
	s.Deps = append(s.Deps, name)
	return true
}

// RemoveDep removes name from the dependency set, preserving the order of
// the remaining entries. It reports whether the set changed.
func (s *BranchState) RemoveDep(name string) bool {
	i := slices.Index(s.Deps, name)
	if i < 0 {
		return false
	}
	s.Deps = slices.Delete(s.Deps, i, i+1)
	return true
}
