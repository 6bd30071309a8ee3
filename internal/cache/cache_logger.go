package cache

import (
	"context"
	"log/slog"
)

// SafeInvalidatePattern invalidates a cache pattern, logging instead of
// failing the caller when redis is unhealthy.
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// SafeDelete deletes cache keys with logging
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// InvalidateCatalogCache drops every cached catalog view. Called after
// any admin write to the courses collection.
func InvalidateCatalogCache(ctx context.Context, cm *CacheManager) {
	SafeInvalidatePattern(ctx, cm.Catalog, "*")
}

// InvalidateTestimonialCache drops the cached public testimonial list.
func InvalidateTestimonialCache(ctx context.Context, cm *CacheManager) {
	SafeInvalidatePattern(ctx, cm.Testimonial, "*")
}
