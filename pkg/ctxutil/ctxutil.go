// Package ctxutil carries request-scoped caller identity and correlation ids.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

// CallerSource records how the caller id was established.
type CallerSource string

const (
	SourceToken  CallerSource = "token"
	SourceClient CallerSource = "client"
)

type callerKey struct{}

type requestIDKey struct{}

type tokenOnlyKey struct{}

type caller struct {
	id     uuid.UUID
	source CallerSource
}

// WithUserID attaches a client-supplied user id.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return WithCaller(ctx, id, SourceClient)
}

// WithCaller attaches the caller id together with its source.
func WithCaller(ctx context.Context, id uuid.UUID, source CallerSource) context.Context {
	return context.WithValue(ctx, callerKey{}, caller{id: id, source: source})
}

func callerFrom(ctx context.Context) (caller, bool) {
	c, ok := ctx.Value(callerKey{}).(caller)
	if !ok || c.id == uuid.Nil {
		return caller{}, false
	}
	return c, true
}

// UserIDFromCtx returns the caller id. A missing or nil id reports false.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	c, ok := callerFrom(ctx)
	return c.id, ok
}

// SourceFromCtx returns how the caller was identified, or "" for anonymous requests.
func SourceFromCtx(ctx context.Context) CallerSource {
	c, _ := callerFrom(ctx)
	return c.source
}

// OptionalUserID returns the caller id as a pointer, nil when anonymous.
// Rows created on behalf of anonymous callers store a NULL owner.
func OptionalUserID(ctx context.Context) *uuid.UUID {
	c, ok := callerFrom(ctx)
	if !ok {
		return nil
	}
	id := c.id
	return &id
}

// CanAccess reports whether the caller may read a row owned by owner.
// Unowned rows are readable by anyone holding their id.
func CanAccess(ctx context.Context, owner *uuid.UUID) bool {
	if owner == nil {
		return true
	}
	c, ok := callerFrom(ctx)
	return ok && c.id == *owner
}

// WithTokenOnly marks the request so that only a bearer token may identify
// the caller. User ids supplied in the body or headers are ignored.
func WithTokenOnly(ctx context.Context) context.Context {
	return context.WithValue(ctx, tokenOnlyKey{}, true)
}

// ClientIDsAllowed reports whether a client-supplied user id may identify
// the caller of this request.
func ClientIDsAllowed(ctx context.Context) bool {
	tokenOnly, _ := ctx.Value(tokenOnlyKey{}).(bool)
	return !tokenOnly
}

// WithRequestID stores the correlation id for the request.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the correlation id, or "" if none was set.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
