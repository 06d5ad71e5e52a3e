package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StateDirName is the directory under the git dir where branch records live
const StateDirName = "giddy"

// Store reads and writes the persisted per-branch state. Loading a branch
// with no record returns a default empty state, not an error.
type Store interface {
	Load(branchName string) (BranchState, error)
	Save(branchName string, state BranchState) error
}

// FileStore persists one JSON file per branch under <gitdir>/giddy/
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at the given git directory,
// creating the state directory if needed.
func NewFileStore(gitDir string) (*FileStore, error) {
	dir := filepath.Join(gitDir, StateDirName)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// stateFile returns the record path for a branch, with path-unsafe
// characters in the name substituted.
func (s *FileStore) stateFile(branchName string) string {
	slug := strings.ReplaceAll(branchName, "/", "__")
	return filepath.Join(s.dir, slug)
}

// Load reads the persisted state for a branch
func (s *FileStore) Load(branchName string) (BranchState, error) {
	var state BranchState

	data, err := os.ReadFile(s.stateFile(branchName))
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return state, fmt.Errorf("failed to read state for %s: %w", branchName, err)
	}

	if err := json.Unmarshal(data, &state); err != nil {
		return BranchState{}, fmt.Errorf("failed to parse state for %s: %w", branchName, err)
	}
	return state, nil
}

// Save writes the persisted state for a branch
func (s *FileStore) Save(branchName string, state BranchState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state for %s: %w", branchName, err)
	}

	if err := os.WriteFile(s.stateFile(branchName), data, 0600); err != nil {
		return fmt.Errorf("failed to write state for %s: %w", branchName, err)
	}
	return nil
}
