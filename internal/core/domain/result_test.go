package domain_test

import (
	"testing"

	"github.com/javamap/javamap/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoveryResult_ComponentLookup(t *testing.T) {
	billing, err := domain.NewComponent(
		domain.NewInternedString("billing"),
		domain.NewInternedString("com.acme.billing"),
		t.TempDir(), nil, nil, false, domain.Metadata{},
	)
	require.NoError(t, err)

	result := &domain.DiscoveryResult{
		Components: map[domain.InternedString]*domain.Component{billing.Name: billing},
		Graph:      domain.NewDependencyGraph(),
	}

	got, err := result.Component(domain.NewInternedString("billing"))
	require.NoError(t, err)
	assert.Same(t, billing, got)

	_, err = result.Component(domain.NewInternedString("shipping"))
	assert.ErrorIs(t, err, domain.ErrUnknownComponent)
}
