package ctxutil

import (
	"context"
)

type ctxKey string

const (
	requestIDKey  ctxKey = "request_id"
	deliveryIDKey ctxKey = "delivery_id"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithDeliveryID stores the webhook delivery ID in the context.
func WithDeliveryID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, deliveryIDKey, id)
}

// DeliveryIDFromCtx extracts the webhook delivery ID from the context.
// Returns an empty string and false if absent.
func DeliveryIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(deliveryIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
