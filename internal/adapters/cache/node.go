package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/javamap/javamap/internal/adapters/config" //nolint:depguard // Wired in adapter node graph
	"github.com/javamap/javamap/internal/adapters/fs"     //nolint:depguard // Wired in adapter node graph
	"github.com/javamap/javamap/internal/adapters/logger" //nolint:depguard // Wired in adapter node graph
	"github.com/javamap/javamap/internal/core/domain"
	"github.com/javamap/javamap/internal/core/ports"
)

// NodeID is the unique identifier for the component cache Graft node.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.ComponentCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, fs.FingerprinterNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ComponentCache, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			fp, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(settings.CacheDir, settings.MaxCacheBytes(), fp, log)
		},
	})
}
