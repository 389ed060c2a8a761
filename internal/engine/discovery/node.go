package discovery

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/javamap/javamap/internal/adapters/cache"     //nolint:depguard // Wired in engine wiring
	"github.com/javamap/javamap/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"github.com/javamap/javamap/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/javamap/javamap/internal/adapters/scanner"   //nolint:depguard // Wired in engine wiring
	"github.com/javamap/javamap/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/javamap/javamap/internal/core/domain"
	"github.com/javamap/javamap/internal/core/ports"
)

// NodeID is the unique identifier for the discovery orchestrator Graft node.
const NodeID graft.ID = "engine.discovery"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			scanner.NodeID,
			cache.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			src, err := graft.Dep[ports.SourceScanner](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ComponentCache](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return NewOrchestrator(src, store, tracer, log, settings), nil
		},
	})
}
