// Package domain contains the core domain models for component discovery:
// components, the dependency graph, and the discovery result.
package domain

import (
	"iter"
	"slices"
)

// DependencyGraph is a directed graph over component names. Forward and
// reverse adjacency are maintained in lock-step: every node referenced by an
// edge has an entry in both maps, and edge insertion is idempotent.
type DependencyGraph struct {
	forward map[InternedString]map[InternedString]struct{}
	reverse map[InternedString]map[InternedString]struct{}
}

// NewDependencyGraph creates an empty graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		forward: make(map[InternedString]map[InternedString]struct{}),
		reverse: make(map[InternedString]map[InternedString]struct{}),
	}
}

// AddNode registers a component in the graph. Adding an existing node is a
// no-op and never clears its edges.
func (g *DependencyGraph) AddNode(name InternedString) {
	if _, ok := g.forward[name]; !ok {
		g.forward[name] = make(map[InternedString]struct{})
		g.reverse[name] = make(map[InternedString]struct{})
	}
}

// AddEdge records that from depends on to. Both endpoints are registered as
// nodes if they are not already; duplicate edges are no-ops.
func (g *DependencyGraph) AddEdge(from, to InternedString) {
	g.AddNode(from)
	g.AddNode(to)
	g.forward[from][to] = struct{}{}
	g.reverse[to][from] = struct{}{}
}

// Dependencies returns the components that name depends on, sorted.
func (g *DependencyGraph) Dependencies(name InternedString) []InternedString {
	return sortedKeys(g.forward[name])
}

// Dependents returns the components that depend on name, sorted.
func (g *DependencyGraph) Dependents(name InternedString) []InternedString {
	return sortedKeys(g.reverse[name])
}

// Nodes yields every node in sorted order.
func (g *DependencyGraph) Nodes() iter.Seq[InternedString] {
	return func(yield func(InternedString) bool) {
		for _, name := range sortedKeys(g.forward) {
			if !yield(name) {
				return
			}
		}
	}
}

// Edges yields every (from, to) pair in sorted order.
func (g *DependencyGraph) Edges() iter.Seq2[InternedString, InternedString] {
	return func(yield func(InternedString, InternedString) bool) {
		for _, from := range sortedKeys(g.forward) {
			for _, to := range sortedKeys(g.forward[from]) {
				if !yield(from, to) {
					return
				}
			}
		}
	}
}

// NodeCount returns the number of nodes.
func (g *DependencyGraph) NodeCount() int {
	return len(g.forward)
}

// EdgeCount returns the number of edges.
func (g *DependencyGraph) EdgeCount() int {
	count := 0
	for _, deps := range g.forward {
		count += len(deps)
	}
	return count
}

// Traversal colors for cycle detection.
const (
	colorUnvisited = iota
	colorOnPath
	colorDone
)

// HasCycles reports whether the edge set contains a directed cycle. It runs
// an explicit-stack depth-first traversal with three-state coloring, so deep
// graphs cannot exhaust the call stack. Nodes finished by one traversal stay
// finished across later starts. Only the boolean is reported; recovering the
// cycle's members is the caller's problem.
func (g *DependencyGraph) HasCycles() bool {
	color := make(map[InternedString]int, len(g.forward))

	for start := range g.forward {
		if color[start] != colorUnvisited {
			continue
		}

		stack := []InternedString{start}
		for len(stack) > 0 {
			node := stack[len(stack)-1]

			if color[node] == colorUnvisited {
				color[node] = colorOnPath
				for dep := range g.forward[node] {
					switch color[dep] {
					case colorOnPath:
						return true
					case colorUnvisited:
						stack = append(stack, dep)
					}
				}
				continue
			}

			// Revisiting means the node's subtree is finished (or a stale
			// duplicate push); backtrack.
			stack = stack[:len(stack)-1]
			if color[node] == colorOnPath {
				color[node] = colorDone
			}
		}
	}

	return false
}

func sortedKeys[V any](set map[InternedString]V) []InternedString {
	keys := make([]InternedString, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, InternedString.Compare)
	return keys
}
