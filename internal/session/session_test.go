package session

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithNewTraceID(t *testing.T) {
	ctx := WithNewTraceID(context.Background())

	id, ok := TraceIDFrom(ctx)
	require.True(t, ok)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), id)

	// An existing trace ID is kept.
	again, _ := TraceIDFrom(WithNewTraceID(ctx))
	assert.Equal(t, id, again)
}

func TestTraceIDFrom_Missing(t *testing.T) {
	_, ok := TraceIDFrom(context.Background())
	assert.False(t, ok)
}

func TestWithCommand(t *testing.T) {
	ctx := WithCommand(context.Background(), "show")

	cmd, ok := CommandFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, "show", cmd)

	_, ok = CommandFrom(context.Background())
	assert.False(t, ok)
}
