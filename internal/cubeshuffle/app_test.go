package cubeshuffle

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/cubeshuffle/internal/core/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	return &cfg
}

func TestOpen_BackendOverride(t *testing.T) {
	cfg := testConfig(t)

	app, closer := Open(cfg, "none", zerolog.Nop())
	defer closer()

	assert.Nil(t, app.Store)
	assert.False(t, app.Settings.Available())
	assert.NotNil(t, app.DetectDesktop)
}

func TestOpen_SettingsPersist(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.Store.Backend = config.BackendFile

	app, closer := Open(cfg, "", zerolog.Nop())
	require.NotNil(t, app.Store)

	s := app.Settings.Load(ctx)
	s.Seed = "persisted"
	app.Settings.Save(ctx, s)
	closer()

	reopened, closer := Open(cfg, "", zerolog.Nop())
	defer closer()
	assert.Equal(t, "persisted", reopened.Settings.Load(ctx).Seed)
}
