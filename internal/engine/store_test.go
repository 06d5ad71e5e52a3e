package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	t.Run("missing record loads as default state", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		state, err := store.Load("feat")
		require.NoError(t, err)
		require.Empty(t, state.Deps)
		require.Nil(t, state.Base)
		require.Nil(t, state.ReviewRef)
		require.False(t, state.Dirty)
	})

	t.Run("roundtrip", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		pr := 42
		saved := BranchState{
			Deps:      []string{"main", "feat-1"},
			ReviewRef: &pr,
			Base:      strptr("feat-1"),
			Dirty:     true,
		}
		require.NoError(t, store.Save("feat-2", saved))

		loaded, err := store.Load("feat-2")
		require.NoError(t, err)
		require.Equal(t, saved, loaded)
	})

	t.Run("slash in branch name maps to a flat file", func(t *testing.T) {
		gitDir := t.TempDir()
		store, err := NewFileStore(gitDir)
		require.NoError(t, err)

		require.NoError(t, store.Save("user/feat", BranchState{Deps: []string{"main"}}))

		_, err = os.Stat(filepath.Join(gitDir, StateDirName, "user__feat"))
		require.NoError(t, err)

		loaded, err := store.Load("user/feat")
		require.NoError(t, err)
		require.Equal(t, []string{"main"}, loaded.Deps)
	})

	t.Run("corrupt record is an error", func(t *testing.T) {
		gitDir := t.TempDir()
		store, err := NewFileStore(gitDir)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(gitDir, StateDirName, "feat"), []byte("{nope"), 0600))

		_, err = store.Load("feat")
		require.Error(t, err)
	})
}

func TestBranchStateDeps(t *testing.T) {
	var state BranchState

	require.True(t, state.AddDep("a"))
	require.True(t, state.AddDep("b"))
	require.False(t, state.AddDep("a"))
	require.Equal(t, []string{"a", "b"}, state.Deps)
	require.True(t, state.HasDep("b"))

	require.True(t, state.RemoveDep("a"))
	require.False(t, state.RemoveDep("a"))
	require.Equal(t, []string{"b"}, state.Deps)
}
