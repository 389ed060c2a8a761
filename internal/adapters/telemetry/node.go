package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"

	"github.com/javamap/javamap/internal/adapters/telemetry/progrock"
	"github.com/javamap/javamap/internal/core/ports"
)

// TracerNodeID is the unique identifier for the telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			// Progress recording is the default; an OTel tracer can be
			// selected for environments with a collector configured.
			if os.Getenv("JAVAMAP_OTEL") != "" {
				return NewOTelTracer("javamap"), nil
			}
			return progrock.New(), nil
		},
	})
}
