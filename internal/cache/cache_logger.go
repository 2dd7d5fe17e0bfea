package cache

import (
	"context"
	"log/slog"
)

// SafeInvalidatePattern invalidates a pattern and logs instead of failing.
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// InvalidateClassCache drops every cached class listing. Called after any
// class write, including seat reservations.
func InvalidateClassCache(ctx context.Context, cm *CacheManager) {
	SafeInvalidatePattern(ctx, cm.Class, "list:*")
}

// InvalidateInstructorCache drops every cached instructor listing.
func InvalidateInstructorCache(ctx context.Context, cm *CacheManager) {
	SafeInvalidatePattern(ctx, cm.Instructor, "list:*")
}
