package progrock

import (
	"fmt"

	"github.com/vito/progrock"
)

// Span implements ports.Span wrapping *progrock.VertexRecorder. The vertex
// is completed on End with whatever error was last recorded.
type Span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// End completes the vertex.
func (s *Span) End() {
	s.vertex.Done(s.err)
}

// RecordError stores the error so End reports the vertex as failed.
func (s *Span) RecordError(err error) {
	s.err = err
}

// SetAttribute records the pair as a vertex log line.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// Write forwards to the vertex stdout stream.
func (s *Span) Write(p []byte) (n int, err error) {
	return s.vertex.Stdout().Write(p)
}
