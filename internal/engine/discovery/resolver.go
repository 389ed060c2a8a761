package discovery

import (
	"strings"

	"github.com/javamap/javamap/internal/core/domain"
)

// ResolveEdges turns raw per-component dependency references into graph
// edges. A reference matches every component whose package starts with it,
// so a reference to a parent package links to all its subpackage components.
// References that match no component are dropped silently; self references
// are kept and surface later as cycles.
func ResolveEdges(components map[domain.InternedString]*domain.Component, graph *domain.DependencyGraph) {
	for name := range components {
		graph.AddNode(name)
	}

	for name, component := range components {
		for ref := range component.Dependencies {
			for otherName, other := range components {
				if strings.HasPrefix(other.Package.String(), ref) {
					graph.AddEdge(name, otherName)
				}
			}
		}
	}
}
