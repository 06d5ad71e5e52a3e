package git

import "context"

// Backend is the narrow set of repository operations the core needs from
// the version-control backend. The engine is written against this
// interface so tests can substitute a fake backend.
type Backend interface {
	// Read-only queries
	ListBranchNames() ([]string, error)
	CurrentBranchName() (string, error)
	HeadCommit(branchName string) (string, error)
	ForkPoint(ctx context.Context, branchName, baseName string) (string, bool, error)
	// Contains reports whether branchName's history contains candidateName's tip
	Contains(branchName, candidateName string) (bool, error)
	// IsMergedInto reports whether branchName has been fully merged into targetName
	IsMergedInto(branchName, targetName string) (bool, error)
	GitDir() (string, error)

	// Actions
	RebaseOnto(ctx context.Context, branchName, oldBase, newBase string) error
	CreateBranch(ctx context.Context, name string) error
}

// NewRealBackend returns a Backend that calls the package-level git
// functions against the default repository.
func NewRealBackend() Backend {
	return &realBackend{}
}

// realBackend implements Backend by calling the actual git package functions
type realBackend struct{}

func (b *realBackend) ListBranchNames() ([]string, error) {
	return GetAllBranchNames()
}

func (b *realBackend) CurrentBranchName() (string, error) {
	return GetCurrentBranch()
}

func (b *realBackend) HeadCommit(branchName string) (string, error) {
	return HeadCommit(branchName)
}

func (b *realBackend) ForkPoint(ctx context.Context, branchName, baseName string) (string, bool, error) {
	return ForkPoint(ctx, branchName, baseName)
}

func (b *realBackend) Contains(branchName, candidateName string) (bool, error) {
	return IsAncestor(candidateName, branchName)
}

func (b *realBackend) IsMergedInto(branchName, targetName string) (bool, error) {
	return IsAncestor(branchName, targetName)
}

func (b *realBackend) GitDir() (string, error) {
	return GetGitDir()
}

func (b *realBackend) RebaseOnto(ctx context.Context, branchName, oldBase, newBase string) error {
	return RebaseOnto(ctx, branchName, oldBase, newBase)
}

func (b *realBackend) CreateBranch(ctx context.Context, name string) error {
	return CreateAndSwitchBranch(ctx, name)
}
