package domain

import "go.trai.ch/zerr"

// DiscoveryResult is the owned output of one discovery run: the component
// map keyed by component name plus the dependency graph over those names.
// The subsystem hands it to the caller and never mutates it afterwards; the
// cache keeps its own serialized copies and never aliases this object.
type DiscoveryResult struct {
	Components map[InternedString]*Component
	Graph      *DependencyGraph
}

// Component looks up a component by name.
func (r *DiscoveryResult) Component(name InternedString) (*Component, error) {
	c, ok := r.Components[name]
	if !ok {
		return nil, zerr.With(ErrUnknownComponent, "name", name.String())
	}
	return c, nil
}
