package telemetry_test

import (
	"context"
	"testing"

	"github.com/javamap/javamap/internal/adapters/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(context.Background(), "stage")
	assert.Equal(t, context.Background(), ctx)

	n, err := span.Write([]byte("ignored"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	span.SetAttribute("key", "value")
	span.RecordError(assert.AnError)
	span.End()
}
