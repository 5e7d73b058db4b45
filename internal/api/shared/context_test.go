package shared

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetTraceID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx), "Expected empty trace ID in original context")

	ctxWithTrace := SetTraceID(ctx)
	traceID := GetTraceID(ctxWithTrace)
	require.NotEmpty(t, traceID)

	_, err := uuid.Parse(traceID)
	assert.NoError(t, err, "trace ID should be a UUID")

	assert.NotEqual(t, traceID, GetTraceID(SetTraceID(ctx)), "trace IDs should be unique")
}

func TestWithTraceID(t *testing.T) {
	t.Parallel()

	ctx := WithTraceID(context.Background(), "trace-123")
	assert.Equal(t, "trace-123", GetTraceID(ctx))

	wrongType := context.WithValue(context.Background(), TraceIDKey, 42)
	assert.Empty(t, GetTraceID(wrongType))
}
