package engine

import (
	"context"
	"fmt"
	"io"
	"slices"

	"giddy.dev/giddy/internal/output"
)

// fakeBackend is an in-memory git backend that records mutating calls
type fakeBackend struct {
	branches []string
	current  string
	heads    map[string]string

	// forkPoints maps "branch@base" to the fork point hash; absent keys
	// mean git could not determine one
	forkPoints map[string]string

	// containsPairs holds "branch>candidate" entries for Contains,
	// mergedPairs holds "branch>target" entries for IsMergedInto
	containsPairs map[string]bool
	mergedPairs   map[string]bool

	rebases []string
	created []string
}

func newFakeBackend(branches ...string) *fakeBackend {
	return &fakeBackend{
		branches:      branches,
		heads:         make(map[string]string),
		forkPoints:    make(map[string]string),
		containsPairs: make(map[string]bool),
		mergedPairs:   make(map[string]bool),
	}
}

func (f *fakeBackend) setForkPoint(branchName, baseName, hash string) {
	f.forkPoints[branchName+"@"+baseName] = hash
}

func (f *fakeBackend) ListBranchNames() ([]string, error) {
	return slices.Clone(f.branches), nil
}

func (f *fakeBackend) CurrentBranchName() (string, error) {
	return f.current, nil
}

func (f *fakeBackend) HeadCommit(branchName string) (string, error) {
	head, ok := f.heads[branchName]
	if !ok {
		return "", fmt.Errorf("no head recorded for %s", branchName)
	}
	return head, nil
}

func (f *fakeBackend) ForkPoint(_ context.Context, branchName, baseName string) (string, bool, error) {
	hash, ok := f.forkPoints[branchName+"@"+baseName]
	return hash, ok, nil
}

func (f *fakeBackend) Contains(branchName, candidateName string) (bool, error) {
	return f.containsPairs[branchName+">"+candidateName], nil
}

func (f *fakeBackend) IsMergedInto(branchName, targetName string) (bool, error) {
	return f.mergedPairs[branchName+">"+targetName], nil
}

func (f *fakeBackend) GitDir() (string, error) {
	return "/tmp/fake/.git", nil
}

func (f *fakeBackend) RebaseOnto(_ context.Context, branchName, oldBase, newBase string) error {
	f.rebases = append(f.rebases, fmt.Sprintf("%s: %s -> %s", branchName, oldBase, newBase))
	return nil
}

func (f *fakeBackend) CreateBranch(_ context.Context, name string) error {
	f.created = append(f.created, name)
	f.branches = append(f.branches, name)
	f.current = name
	return nil
}

// memStore is an in-memory state store
type memStore struct {
	states map[string]BranchState
	saved  []string
}

func newMemStore() *memStore {
	return &memStore{states: make(map[string]BranchState)}
}

func (m *memStore) Load(branchName string) (BranchState, error) {
	return m.states[branchName], nil
}

func (m *memStore) Save(branchName string, state BranchState) error {
	m.states[branchName] = state
	m.saved = append(m.saved, branchName)
	return nil
}

func newTestEngine(backend *fakeBackend, store Store, trunk string) *Engine {
	return NewEngineWith(backend, store, trunk, output.NewSplogWithWriter(io.Discard))
}

func strptr(s string) *string {
	return &s
}
