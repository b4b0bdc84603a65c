package logging

import "context"

type contextKey string

const reviewIDKey contextKey = "review_id"

// WithReviewID tags the context with the id of the running review session.
func WithReviewID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, reviewIDKey, id)
}

// GetReviewID retrieves the review session id from the context.
// Returns empty string if not present.
func GetReviewID(ctx context.Context) string {
	if id, ok := ctx.Value(reviewIDKey).(string); ok {
		return id
	}
	return ""
}
