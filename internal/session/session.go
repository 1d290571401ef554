// Package session carries per-command values through a context so that log
// lines from the shell and the engine can be correlated.
package session

import (
	"context"
	"math/rand/v2"
	"strconv"
)

type (
	traceIDCtxKey struct{}
	commandCtxKey struct{}
)

// WithNewTraceID returns ctx unchanged if it already carries a trace ID and
// a derived context with a fresh one otherwise.
func WithNewTraceID(ctx context.Context) context.Context {
	if _, ok := TraceIDFrom(ctx); ok {
		return ctx
	}
	return context.WithValue(ctx, traceIDCtxKey{}, generateTraceID())
}

// TraceIDFrom extracts the trace ID, if one exists.
func TraceIDFrom(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(traceIDCtxKey{}).(string)
	return traceID, ok
}

// WithCommand records the shell command being executed.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, commandCtxKey{}, command)
}

func CommandFrom(ctx context.Context) (string, bool) {
	command, ok := ctx.Value(commandCtxKey{}).(string)
	return command, ok
}

// generateTraceID returns 16 lowercase hex characters.
func generateTraceID() string {
	s := strconv.FormatUint(rand.Uint64(), 16)
	for len(s) < 16 {
		s = "0" + s
	}
	return s
}
