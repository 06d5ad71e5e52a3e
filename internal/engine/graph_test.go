package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	giddyerrors "giddy.dev/giddy/internal/errors"
)

func buildGraph(t *testing.T, nodes []string, edges [][2]string) *Graph {
	t.Helper()
	g := NewGraph()
	for _, node := range nodes {
		g.AddNode(node)
	}
	for _, edge := range edges {
		require.NoError(t, g.TryAddEdge(edge[0], edge[1]))
	}
	return g
}

func TestGraphAddEdge(t *testing.T) {
	t.Run("rejects unknown endpoints", func(t *testing.T) {
		g := buildGraph(t, []string{"main", "feat"}, nil)

		err := g.TryAddEdge("feat", "nope")
		require.ErrorIs(t, err, giddyerrors.ErrUnknownBranch)

		err = g.TryAddEdge("nope", "main")
		require.ErrorIs(t, err, giddyerrors.ErrUnknownBranch)
	})

	t.Run("rejects self dependency", func(t *testing.T) {
		g := buildGraph(t, []string{"feat"}, nil)

		err := g.TryAddEdge("feat", "feat")
		require.ErrorIs(t, err, giddyerrors.ErrWouldCreateCycle)
	})

	t.Run("rejects cycle and leaves graph unchanged", func(t *testing.T) {
		g := buildGraph(t, []string{"a", "b", "c"}, [][2]string{
			{"a", "b"},
			{"b", "c"},
		})

		err := g.TryAddEdge("c", "a")
		require.ErrorIs(t, err, giddyerrors.ErrWouldCreateCycle)

		deps, err := g.DependenciesOf("c")
		require.NoError(t, err)
		require.Empty(t, deps)
	})

	t.Run("duplicate edge is a no-op", func(t *testing.T) {
		g := buildGraph(t, []string{"a", "b"}, [][2]string{{"a", "b"}})

		require.NoError(t, g.TryAddEdge("a", "b"))

		deps, err := g.DependenciesOf("a")
		require.NoError(t, err)
		require.Equal(t, []string{"b"}, deps)
	})
}

func TestGraphNeighbors(t *testing.T) {
	// Diamond: b and c depend on a, d is queried from both sides
	g := buildGraph(t, []string{"a", "b", "c", "d"}, [][2]string{
		{"b", "a"},
		{"c", "a"},
		{"d", "b"},
	})

	deps, err := g.DependenciesOf("d")
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, deps)

	dependents, err := g.DependentsOf("a")
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c"}, dependents)

	_, err = g.DependentsOf("nope")
	require.ErrorIs(t, err, giddyerrors.ErrUnknownBranch)
}

func TestGraphReversed(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c"}, [][2]string{
		{"b", "a"},
		{"c", "b"},
	})

	r := g.Reversed()

	require.Equal(t, g.Nodes(), r.Nodes())

	deps, err := r.DependenciesOf("a")
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, deps)

	dependents, err := r.DependentsOf("b")
	require.NoError(t, err)
	require.Equal(t, []string{"c"}, dependents)

	// Reversing must not share edge slices with the original
	require.NoError(t, r.TryAddEdge("a", "c"))
	deps, err = g.DependenciesOf("a")
	require.NoError(t, err)
	require.Empty(t, deps)
}
