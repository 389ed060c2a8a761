package scanner

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/javamap/javamap/internal/adapters/fs" //nolint:depguard // Wired in adapter node graph
	"github.com/javamap/javamap/internal/core/ports"
)

// NodeID is the unique identifier for the source scanner Graft node.
const NodeID graft.ID = "adapter.scanner"

func init() {
	graft.Register(graft.Node[ports.SourceScanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.SourceScanner, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewJavaScanner(walker), nil
		},
	})
}
