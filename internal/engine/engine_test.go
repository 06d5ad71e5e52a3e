package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	giddyerrors "giddy.dev/giddy/internal/errors"
)

func TestLoadStateDefaultsBase(t *testing.T) {
	backend := newFakeBackend("main", "feat")
	store := newMemStore()
	eng := newTestEngine(backend, store, "main")

	t.Run("feature branch defaults to the default branch", func(t *testing.T) {
		state, err := eng.LoadState("feat")
		require.NoError(t, err)
		require.Equal(t, strptr("main"), state.Base)
	})

	t.Run("default branch has no base", func(t *testing.T) {
		state, err := eng.LoadState("main")
		require.NoError(t, err)
		require.Nil(t, state.Base)
	})

	t.Run("persisted base wins", func(t *testing.T) {
		store.states["feat"] = BranchState{Base: strptr("other")}
		state, err := eng.LoadState("feat")
		require.NoError(t, err)
		require.Equal(t, strptr("other"), state.Base)
	})
}

func TestEffectiveDeps(t *testing.T) {
	eng := newTestEngine(newFakeBackend("main"), newMemStore(), "main")

	t.Run("empty set means the default branch", func(t *testing.T) {
		state := BranchState{}
		require.Equal(t, []string{"main"}, eng.EffectiveDeps("feat", &state))
	})

	t.Run("default branch depends on nothing", func(t *testing.T) {
		state := BranchState{}
		require.Empty(t, eng.EffectiveDeps("main", &state))
	})

	t.Run("explicit deps pass through", func(t *testing.T) {
		state := BranchState{Deps: []string{"feat-1"}}
		require.Equal(t, []string{"feat-1"}, eng.EffectiveDeps("feat-2", &state))
	})
}

func TestBuildGraph(t *testing.T) {
	t.Run("implicit and explicit edges", func(t *testing.T) {
		backend := newFakeBackend("main", "feat-1", "feat-2")
		store := newMemStore()
		store.states["feat-2"] = BranchState{Deps: []string{"feat-1"}}
		eng := newTestEngine(backend, store, "main")

		graph, err := eng.BuildGraph()
		require.NoError(t, err)

		deps, err := graph.DependenciesOf("feat-1")
		require.NoError(t, err)
		require.Equal(t, []string{"main"}, deps)

		deps, err = graph.DependenciesOf("feat-2")
		require.NoError(t, err)
		require.Equal(t, []string{"feat-1"}, deps)

		deps, err = graph.DependenciesOf("main")
		require.NoError(t, err)
		require.Empty(t, deps)
	})

	t.Run("stale dependency on a deleted branch is skipped", func(t *testing.T) {
		backend := newFakeBackend("main", "feat")
		store := newMemStore()
		store.states["feat"] = BranchState{Deps: []string{"gone"}}
		eng := newTestEngine(backend, store, "main")

		graph, err := eng.BuildGraph()
		require.NoError(t, err)

		deps, err := graph.DependenciesOf("feat")
		require.NoError(t, err)
		require.Empty(t, deps)
	})
}

func TestAddDeps(t *testing.T) {
	t.Run("persists new dependencies", func(t *testing.T) {
		backend := newFakeBackend("main", "feat-1", "feat-2")
		store := newMemStore()
		eng := newTestEngine(backend, store, "main")

		require.NoError(t, eng.AddDeps("feat-2", []string{"feat-1"}))
		require.Equal(t, []string{"feat-1"}, store.states["feat-2"].Deps)
	})

	t.Run("rejects unknown dependency", func(t *testing.T) {
		backend := newFakeBackend("main", "feat")
		store := newMemStore()
		eng := newTestEngine(backend, store, "main")

		err := eng.AddDeps("feat", []string{"nope"})
		require.ErrorIs(t, err, giddyerrors.ErrUnknownBranch)
	})

	t.Run("rejects a dependency cycle before persisting", func(t *testing.T) {
		backend := newFakeBackend("main", "feat-1", "feat-2")
		store := newMemStore()
		store.states["feat-2"] = BranchState{Deps: []string{"feat-1"}}
		eng := newTestEngine(backend, store, "main")

		err := eng.AddDeps("feat-1", []string{"feat-2"})
		require.ErrorIs(t, err, giddyerrors.ErrWouldCreateCycle)
		require.Empty(t, store.states["feat-1"].Deps)
	})

	t.Run("duplicate dependency is a no-op", func(t *testing.T) {
		backend := newFakeBackend("main", "feat-1", "feat-2")
		store := newMemStore()
		store.states["feat-2"] = BranchState{Deps: []string{"feat-1"}}
		eng := newTestEngine(backend, store, "main")

		require.NoError(t, eng.AddDeps("feat-2", []string{"feat-1"}))
		require.Equal(t, []string{"feat-1"}, store.states["feat-2"].Deps)
	})
}

func TestRemoveDeps(t *testing.T) {
	t.Run("removes and reports", func(t *testing.T) {
		backend := newFakeBackend("main", "feat-1", "feat-2")
		store := newMemStore()
		store.states["feat-2"] = BranchState{Deps: []string{"feat-1", "main"}}
		eng := newTestEngine(backend, store, "main")

		removed, err := eng.RemoveDeps("feat-2", []string{"feat-1", "absent"})
		require.NoError(t, err)
		require.Equal(t, []string{"feat-1"}, removed)
		require.Equal(t, []string{"main"}, store.states["feat-2"].Deps)
	})

	t.Run("nothing removed means nothing saved", func(t *testing.T) {
		backend := newFakeBackend("main", "feat")
		store := newMemStore()
		eng := newTestEngine(backend, store, "main")

		removed, err := eng.RemoveDeps("feat", []string{"absent"})
		require.NoError(t, err)
		require.Empty(t, removed)
		require.Empty(t, store.saved)
	})
}
