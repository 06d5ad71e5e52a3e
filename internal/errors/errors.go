// Package errors provides sentinel errors and custom error types for giddy.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrUnknownBranch indicates that a referenced branch is not in the graph
	ErrUnknownBranch = errors.New("unknown branch")

	// ErrWouldCreateCycle indicates a rejected graph mutation
	ErrWouldCreateCycle = errors.New("would create cycle")

	// ErrMultipleDependencies indicates more than one active dependency
	ErrMultipleDependencies = errors.New("multiple dependencies unsupported")

	// ErrUnresolvableForkPoint indicates drift with no safe rebase target
	ErrUnresolvableForkPoint = errors.New("unresolvable fork point")

	// ErrRebaseConflict indicates that a rebase operation encountered a conflict
	ErrRebaseConflict = errors.New("rebase conflict")
)

// UnknownBranchError represents a reference to a branch absent from the graph
type UnknownBranchError struct {
	BranchName string
}

func (e *UnknownBranchError) Error() string {
	return fmt.Sprintf("branch `%s` not found", e.BranchName)
}

// Is returns true if the target error is ErrUnknownBranch
func (e *UnknownBranchError) Is(target error) bool {
	return target == ErrUnknownBranch
}

// NewUnknownBranchError creates a new UnknownBranchError
func NewUnknownBranchError(branchName string) *UnknownBranchError {
	return &UnknownBranchError{BranchName: branchName}
}

// CycleError represents a graph mutation rejected because it would create a cycle
type CycleError struct {
	BranchName string
	Dependency string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("adding `%s` as dependency of `%s` would create a cycle", e.Dependency, e.BranchName)
}

// Is returns true if the target error is ErrWouldCreateCycle
func (e *CycleError) Is(target error) bool {
	return target == ErrWouldCreateCycle
}

// NewCycleError creates a new CycleError
func NewCycleError(branchName, dependency string) *CycleError {
	return &CycleError{BranchName: branchName, Dependency: dependency}
}

// MultipleDependenciesError is returned when a branch has more than one
// active dependency after implicit-default pruning. The reconciliation
// algorithm only handles a single dependency at a time.
type MultipleDependenciesError struct {
	BranchName   string
	Dependencies []string
}

func (e *MultipleDependenciesError) Error() string {
	return fmt.Sprintf("branch `%s` has more than one dependency (%s), which is currently unsupported",
		e.BranchName, strings.Join(e.Dependencies, ", "))
}

// Is returns true if the target error is ErrMultipleDependencies
func (e *MultipleDependenciesError) Is(target error) bool {
	return target == ErrMultipleDependencies
}

// NewMultipleDependenciesError creates a new MultipleDependenciesError
func NewMultipleDependenciesError(branchName string, deps []string) *MultipleDependenciesError {
	return &MultipleDependenciesError{BranchName: branchName, Dependencies: deps}
}

// UnresolvableForkPointError is returned when a branch needs an update but
// no fork point against its dependency can be determined and none of the
// already-satisfied fallbacks hold.
type UnresolvableForkPointError struct {
	BranchName string
	Dependency string
}

func (e *UnresolvableForkPointError) Error() string {
	return fmt.Sprintf("unable to determine fork point between `%s` and `%s`", e.BranchName, e.Dependency)
}

// Is returns true if the target error is ErrUnresolvableForkPoint
func (e *UnresolvableForkPointError) Is(target error) bool {
	return target == ErrUnresolvableForkPoint
}

// NewUnresolvableForkPointError creates a new UnresolvableForkPointError
func NewUnresolvableForkPointError(branchName, dependency string) *UnresolvableForkPointError {
	return &UnresolvableForkPointError{BranchName: branchName, Dependency: dependency}
}

// RebaseConflictError represents an error when a rebase encounters a conflict
type RebaseConflictError struct {
	BranchName string
	Onto       string
}

func (e *RebaseConflictError) Error() string {
	if e.Onto != "" {
		return fmt.Sprintf("rebase of branch `%s` onto `%s` hit a conflict, resolve it or run `git rebase --abort`", e.BranchName, e.Onto)
	}
	return fmt.Sprintf("rebase conflict on branch `%s`", e.BranchName)
}

// Is returns true if the target error is ErrRebaseConflict
func (e *RebaseConflictError) Is(target error) bool {
	return target == ErrRebaseConflict
}

// NewRebaseConflictError creates a new RebaseConflictError
func NewRebaseConflictError(branchName, onto string) *RebaseConflictError {
	return &RebaseConflictError{BranchName: branchName, Onto: onto}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
