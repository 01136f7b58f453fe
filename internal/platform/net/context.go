// Package net carries request scoped values and the response envelope shared by transports
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey uint8

const (
	keyUserID ctxKey = iota
	keyUserSlot
)

// WithRequestID stores reqID where chimw.GetReqID finds it
func WithRequestID(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on ctx, if any
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// WithUser stores the authenticated user id, which is also the owner of every record the request touches
// an enclosing TrackUser sees it as well
func WithUser(ctx context.Context, userID string) context.Context {
	if userID == "" {
		return ctx
	}
	if slot, ok := ctx.Value(keyUserSlot).(*string); ok {
		*slot = userID
	}
	return context.WithValue(ctx, keyUserID, userID)
}

// UserID returns the user id on ctx, if any
func UserID(ctx context.Context) string {
	v, _ := ctx.Value(keyUserID).(string)
	return v
}

// TrackUser lets outer middleware read the user id a handler deeper in the chain resolved
// seen returns "" until WithUser runs on a derived context
func TrackUser(ctx context.Context) (out context.Context, seen func() string) {
	slot := new(string)
	return context.WithValue(ctx, keyUserSlot, slot), func() string { return *slot }
}
