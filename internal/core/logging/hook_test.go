package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
	}{
		{name: "review id present", ctx: WithReviewID(context.Background(), "r-1"), wantID: "r-1"},
		{name: "background context", ctx: context.Background()},
		{name: "empty review id", ctx: WithReviewID(context.Background(), "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Hook(ContextHook{})
			logger.Info().Ctx(tt.ctx).Msg("test")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			id, ok := entry["review_id"]
			if tt.wantID == "" {
				assert.False(t, ok, "review_id should be absent")
				return
			}
			assert.Equal(t, tt.wantID, id)
		})
	}
}
