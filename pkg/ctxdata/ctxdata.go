package ctxdata

import (
	"context"
)

type traceIDKey struct{}
type eventIDKey struct{}

var (
	traceIDKeyInstance = traceIDKey{}
	eventIDKeyInstance = eventIDKey{}
)

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKeyInstance, traceID)
}

func GetTraceID(ctx context.Context) (string, bool) {
	v := ctx.Value(traceIDKeyInstance)
	traceID, ok := v.(string)
	return traceID, ok
}

// WithEventID tags the context with the Slack event currently being processed.
func WithEventID(ctx context.Context, eventID string) context.Context {
	return context.WithValue(ctx, eventIDKeyInstance, eventID)
}

func GetEventID(ctx context.Context) (string, bool) {
	v := ctx.Value(eventIDKeyInstance)
	eventID, ok := v.(string)
	return eventID, ok
}
