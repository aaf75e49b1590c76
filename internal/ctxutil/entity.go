// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// EntityKey is the context key for the entity being generated.
type EntityKey struct{}

// WithEntity returns a context with the entity type name embedded.
func WithEntity(ctx context.Context, entity string) context.Context {
	return context.WithValue(ctx, EntityKey{}, entity)
}

// EntityFromContext returns the entity type name from context, or empty string if not set.
func EntityFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(EntityKey{}).(string); ok {
		return v
	}
	return ""
}
