package discovery

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"golang.org/x/sync/singleflight"

	"github.com/javamap/javamap/internal/core/domain"
	"github.com/javamap/javamap/internal/core/ports"
	"go.trai.ch/zerr"
)

// Orchestrator runs the discovery pipeline end to end: cache probe, source
// scanning per root, aggregation, edge resolution and cache write-back.
// Concurrent calls for the same tree are coalesced in process; across
// processes the cache's atomic entry replacement keeps writers from
// corrupting each other.
type Orchestrator struct {
	scanner  ports.SourceScanner
	cache    ports.ComponentCache
	tracer   ports.Tracer
	log      ports.Logger
	settings domain.Settings

	group singleflight.Group
}

// NewOrchestrator wires the pipeline stages together.
func NewOrchestrator(
	scanner ports.SourceScanner,
	cache ports.ComponentCache,
	tracer ports.Tracer,
	log ports.Logger,
	settings domain.Settings,
) *Orchestrator {
	return &Orchestrator{
		scanner:  scanner,
		cache:    cache,
		tracer:   tracer,
		log:      log,
		settings: settings,
	}
}

// flightResult carries a coalesced run's output back to every waiter. Each
// run writes to its own private run log; waiters replay the messages into
// their caller's log afterward.
type flightResult struct {
	result   *domain.DiscoveryResult
	messages []string
}

// Discover returns the component map and dependency graph for the tree at
// root, from cache when the tree's fingerprint matches a stored entry.
func (o *Orchestrator) Discover(ctx context.Context, root string, log *domain.RunLog) (*domain.DiscoveryResult, error) {
	v, err, _ := o.group.Do(filepath.Clean(root), func() (any, error) {
		rl := &domain.RunLog{}
		result, err := o.discover(ctx, root, rl)
		return flightResult{result: result, messages: rl.Messages()}, err
	})

	if fr, ok := v.(flightResult); ok {
		log.AppendAll(fr.messages)
		if err == nil {
			return fr.result, nil
		}
	}
	return nil, zerr.Wrap(errors.Join(domain.ErrDiscoveryFailed, err), "component discovery failed")
}

func (o *Orchestrator) discover(ctx context.Context, root string, rl *domain.RunLog) (*domain.DiscoveryResult, error) {
	rl.Append("Starting component discovery...")

	ctx, span := o.tracer.Start(ctx, "discovery")
	defer span.End()
	span.SetAttribute("root", root)

	cached, err := o.loadCached(ctx, root, rl)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if cached != nil {
		return cached, nil
	}

	components, err := o.scanTree(ctx, root, rl)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	graph := o.resolve(ctx, components)
	result := &domain.DiscoveryResult{Components: components, Graph: graph}

	if graph.HasCycles() {
		rl.Append("Warning: Circular dependencies detected")
	}

	// A failed write-back degrades to an uncached run, it never fails the
	// discovery itself.
	if err := o.cache.Save(root, result); err != nil {
		o.log.Warn("cache save failed: " + err.Error())
	}

	rl.Appendf("Discovered %d components", len(components))
	return result, nil
}

// loadCached probes the cache. A nil result with nil error is a miss.
func (o *Orchestrator) loadCached(ctx context.Context, root string, rl *domain.RunLog) (*domain.DiscoveryResult, error) {
	_, span := o.tracer.Start(ctx, "cache.load")
	defer span.End()

	result, ok, err := o.cache.Load(root)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	rl.Append("Loaded component graph from cache")
	span.SetAttribute("components", result.Graph.NodeCount())
	return result, nil
}

// scanTree scans the configured main and test roots that exist under root
// and aggregates the files into components. A missing root is skipped, not
// an error; Maven trees routinely lack one of the two.
func (o *Orchestrator) scanTree(ctx context.Context, root string, rl *domain.RunLog) (map[domain.InternedString]*domain.Component, error) {
	_, span := o.tracer.Start(ctx, "scan")
	defer span.End()

	components := make(map[domain.InternedString]*domain.Component)
	for _, sourceRoot := range []struct {
		rel    string
		isTest bool
	}{
		{o.settings.MainRoot, false},
		{o.settings.TestRoot, true},
	} {
		dir := filepath.Join(root, sourceRoot.rel)
		if _, err := os.Stat(dir); err != nil {
			continue
		}

		scans, err := o.scanner.Scan(dir, rl)
		if err != nil {
			span.RecordError(err)
			return nil, zerr.With(zerr.Wrap(err, "failed to scan source root"), "dir", dir)
		}
		Aggregate(scans, sourceRoot.isTest, rl, components)
	}

	span.SetAttribute("components", len(components))
	return components, nil
}

// resolve builds the dependency graph over the aggregated components.
func (o *Orchestrator) resolve(ctx context.Context, components map[domain.InternedString]*domain.Component) *domain.DependencyGraph {
	_, span := o.tracer.Start(ctx, "resolve")
	defer span.End()

	graph := domain.NewDependencyGraph()
	ResolveEdges(components, graph)
	span.SetAttribute("edges", graph.EdgeCount())
	return graph
}
