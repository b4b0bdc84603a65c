package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies the review id from the event context onto log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if id := GetReviewID(ctx); id != "" {
		e.Str("review_id", id)
	}
}
