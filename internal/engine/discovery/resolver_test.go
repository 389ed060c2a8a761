package discovery_test

import (
	"testing"

	"github.com/javamap/javamap/internal/core/domain"
	"github.com/javamap/javamap/internal/engine/discovery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func component(t *testing.T, name, pkg string, deps ...string) *domain.Component {
	t.Helper()
	depSet := make(map[string]struct{}, len(deps))
	for _, dep := range deps {
		depSet[dep] = struct{}{}
	}
	c, err := domain.NewComponent(
		domain.NewInternedString(name),
		domain.NewInternedString(pkg),
		t.TempDir(),
		nil,
		depSet,
		false,
		domain.Metadata{},
	)
	require.NoError(t, err)
	return c
}

func componentMap(components ...*domain.Component) map[domain.InternedString]*domain.Component {
	out := make(map[domain.InternedString]*domain.Component, len(components))
	for _, c := range components {
		out[c.Name] = c
	}
	return out
}

func TestResolveEdges_ExactPackageMatch(t *testing.T) {
	components := componentMap(
		component(t, "billing", "com.acme.billing", "com.acme.shipping"),
		component(t, "shipping", "com.acme.shipping"),
	)

	graph := domain.NewDependencyGraph()
	discovery.ResolveEdges(components, graph)

	assert.Equal(t,
		[]domain.InternedString{domain.NewInternedString("shipping")},
		graph.Dependencies(domain.NewInternedString("billing")))
}

func TestResolveEdges_ParentReferenceMatchesSubpackages(t *testing.T) {
	components := componentMap(
		component(t, "billing", "com.acme.billing", "com.acme.shipping"),
		component(t, "shipping", "com.acme.shipping"),
		component(t, "freight", "com.acme.shipping.freight"),
	)

	graph := domain.NewDependencyGraph()
	discovery.ResolveEdges(components, graph)

	deps := graph.Dependencies(domain.NewInternedString("billing"))
	assert.Equal(t, []domain.InternedString{
		domain.NewInternedString("freight"),
		domain.NewInternedString("shipping"),
	}, deps)
}

// Plain prefix matching links sibling packages that merely share a name
// prefix. Downstream consumers compensate, so the behavior is pinned here.
func TestResolveEdges_PrefixMatchingIsPermissive(t *testing.T) {
	components := componentMap(
		component(t, "app", "com.acme.app", "com.foo"),
		component(t, "foo", "com.foo"),
		component(t, "foobar", "com.foobar"),
	)

	graph := domain.NewDependencyGraph()
	discovery.ResolveEdges(components, graph)

	deps := graph.Dependencies(domain.NewInternedString("app"))
	assert.Equal(t, []domain.InternedString{
		domain.NewInternedString("foo"),
		domain.NewInternedString("foobar"),
	}, deps)
}

func TestResolveEdges_SelfReferenceBecomesSelfLoop(t *testing.T) {
	components := componentMap(
		component(t, "billing", "com.acme.billing", "com.acme.billing"),
	)

	graph := domain.NewDependencyGraph()
	discovery.ResolveEdges(components, graph)

	assert.Equal(t,
		[]domain.InternedString{domain.NewInternedString("billing")},
		graph.Dependencies(domain.NewInternedString("billing")))
	assert.True(t, graph.HasCycles())
}

func TestResolveEdges_UnmatchedReferencesAreDropped(t *testing.T) {
	components := componentMap(
		component(t, "billing", "com.acme.billing", "org.external.lib"),
	)

	graph := domain.NewDependencyGraph()
	discovery.ResolveEdges(components, graph)

	assert.Equal(t, 1, graph.NodeCount())
	assert.Zero(t, graph.EdgeCount())
}

func TestResolveEdges_AllComponentsBecomeNodes(t *testing.T) {
	components := componentMap(
		component(t, "isolated", "com.acme.isolated"),
		component(t, "other", "com.acme.other"),
	)

	graph := domain.NewDependencyGraph()
	discovery.ResolveEdges(components, graph)

	assert.Equal(t, 2, graph.NodeCount())
	assert.Zero(t, graph.EdgeCount())
}
