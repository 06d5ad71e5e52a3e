package engine

import (
	"slices"

	giddyerrors "giddy.dev/giddy/internal/errors"
)

// Graph is a directed acyclic graph over branch names. An edge
// branch -> dependency means "branch depends on dependency". The graph is
// rebuilt from persisted state per invocation and never persisted itself.
//
// Acyclicity is enforced at edge-insertion time: a cyclic dependency would
// make rebase ordering undefined, so it is rejected before any state could
// reflect it, never rolled back after the fact.
type Graph struct {
	order      []string            // node insertion order, for deterministic iteration
	deps       map[string][]string // branch -> direct dependencies
	dependents map[string][]string // dependency -> direct dependents
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		deps:       make(map[string][]string),
		dependents: make(map[string][]string),
	}
}

// AddNode adds a branch node. Adding an existing node is a no-op.
func (g *Graph) AddNode(name string) {
	if g.HasNode(name) {
		return
	}
	g.order = append(g.order, name)
	g.deps[name] = nil
	g.dependents[name] = nil
}

// HasNode reports whether the branch is in the graph
func (g *Graph) HasNode(name string) bool {
	_, ok := g.deps[name]
	return ok
}

// Nodes returns all branch names in insertion order
func (g *Graph) Nodes() []string {
	return slices.Clone(g.order)
}

// TryAddEdge adds the edge branch -> dep only if both endpoints exist and
// the graph stays acyclic; otherwise it fails and the graph is unchanged.
// Adding an existing edge is a no-op.
func (g *Graph) TryAddEdge(branch, dep string) error {
	if !g.HasNode(branch) {
		return giddyerrors.NewUnknownBranchError(branch)
	}
	if !g.HasNode(dep) {
		return giddyerrors.NewUnknownBranchError(dep)
	}
	if slices.Contains(g.deps[branch], dep) {
		return nil
	}
	// branch -> dep closes a cycle iff branch is already reachable from dep
	if branch == dep || g.reachable(dep, branch) {
		return giddyerrors.NewCycleError(branch, dep)
	}

	g.deps[branch] = append(g.deps[branch], dep)
	g.dependents[dep] = append(g.dependents[dep], branch)
	return nil
}

// DependenciesOf returns the direct dependencies of a branch
func (g *Graph) DependenciesOf(branch string) ([]string, error) {
	if !g.HasNode(branch) {
		return nil, giddyerrors.NewUnknownBranchError(branch)
	}
	return slices.Clone(g.deps[branch]), nil
}

// DependentsOf returns the branches that directly depend on a branch
func (g *Graph) DependentsOf(branch string) ([]string, error) {
	if !g.HasNode(branch) {
		return nil, giddyerrors.NewUnknownBranchError(branch)
	}
	return slices.Clone(g.dependents[branch]), nil
}

// Reversed returns a graph with the same nodes and every edge flipped,
// used to walk "what depends on X" instead of "what X depends on".
func (g *Graph) Reversed() *Graph {
	r := NewGraph()
	r.order = slices.Clone(g.order)
	for _, name := range g.order {
		r.deps[name] = slices.Clone(g.dependents[name])
		r.dependents[name] = slices.Clone(g.deps[name])
	}
	return r
}

// reachable reports whether `to` can be reached from `from` along
// dependency edges.
func (g *Graph) reachable(from, to string) bool {
	if from == to {
		return true
	}
	visited := make(map[string]bool)
	stack := []string{from}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[node] {
			continue
		}
		visited[node] = true
		for _, dep := range g.deps[node] {
			if dep == to {
				return true
			}
			stack = append(stack, dep)
		}
	}
	return false
}
