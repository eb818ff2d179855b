// Package graph provides the equivalence resolver: bounded traversal over the
// undirected "alternative of" relation between same-kind entities.
package graph

import (
	"github.com/jonathan/candidate-ranker/internal/types"
)

// DefaultMaxHops bounds equivalence traversal to two edges.
const DefaultMaxHops = 2

// nodeKey identifies an entity in the equivalence graph. Names are canonical
// (see types.CanonicalName), so two skills differing only in case share a node.
type nodeKey struct {
	kind types.Kind
	name string
}

// Graph is an adjacency mapping over equivalence edges. It is built once per
// scoring run and read-only afterwards.
type Graph struct {
	adjacency map[nodeKey]map[string]struct{}
}

// New builds a Graph from equivalence edges. Edges with a missing endpoint,
// an unknown kind, or a self-loop are ignored. The relation is undirected, so
// every edge is stored in both directions.
func New(edges []types.EquivalenceEdge) *Graph {
	g := &Graph{adjacency: make(map[nodeKey]map[string]struct{})}
	for _, e := range edges {
		if !e.Kind.Valid() {
			continue
		}
		a := types.CanonicalName(e.Kind, e.A)
		b := types.CanonicalName(e.Kind, e.B)
		if a == "" || b == "" || a == b {
			continue
		}
		g.addEdge(nodeKey{e.Kind, a}, b)
		g.addEdge(nodeKey{e.Kind, b}, a)
	}
	return g
}

func (g *Graph) addEdge(from nodeKey, to string) {
	neighbors, ok := g.adjacency[from]
	if !ok {
		neighbors = make(map[string]struct{})
		g.adjacency[from] = neighbors
	}
	neighbors[to] = struct{}{}
}

// ViableSet returns the canonical names of all entities that satisfy a
// requirement on the given entity: the entity itself plus everything reachable
// within maxHops undirected edges of the same kind. The visited set makes the
// traversal cycle-safe; an entity with no neighbors yields a singleton set.
func (g *Graph) ViableSet(kind types.Kind, name string, maxHops int) map[string]struct{} {
	start := types.CanonicalName(kind, name)
	viable := map[string]struct{}{start: {}}
	if maxHops <= 0 {
		return viable
	}

	frontier := []string{start}
	for hop := 0; hop < maxHops && len(frontier) > 0; hop++ {
		var next []string
		for _, current := range frontier {
			for neighbor := range g.adjacency[nodeKey{kind, current}] {
				if _, seen := viable[neighbor]; seen {
					continue
				}
				viable[neighbor] = struct{}{}
				next = append(next, neighbor)
			}
		}
		frontier = next
	}
	return viable
}

// Neighbors returns the direct alternatives of an entity. Used by the resolve
// debug command; scoring goes through ViableSet.
func (g *Graph) Neighbors(kind types.Kind, name string) []string {
	neighbors := g.adjacency[nodeKey{kind, types.CanonicalName(kind, name)}]
	out := make([]string, 0, len(neighbors))
	for n := range neighbors {
		out = append(out, n)
	}
	return out
}
