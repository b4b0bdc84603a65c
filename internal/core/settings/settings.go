// Package settings persists the cross-session configuration of the review
// screen (pile table, seed and pack size) in a key-value store.
//
// Every failure in this package is advisory. Load falls back to Default and
// Save and Reset log and return; callers never handle a storage error and
// their in-memory Config stays authoritative.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"

	"github.com/colonyops/cubeshuffle/internal/core/kv"
	"github.com/colonyops/cubeshuffle/internal/core/pack"
	"github.com/colonyops/cubeshuffle/internal/core/validate"
)

// Key is the store key the config is saved under. It must stay stable so a
// value saved by one release loads in the next.
const Key = "cube_shuffle_config"

// DefaultPackSize is the pack size used when nothing valid is stored.
const DefaultPackSize = 15

// Config is the persisted configuration.
type Config struct {
	Piles    map[string]pack.Pile `json:"piles"`
	Seed     string               `json:"seed"`
	PackSize int                  `json:"pack_size"`
}

// Default returns the configuration used when nothing valid is stored.
func Default() Config {
	return Config{
		Piles:    map[string]pack.Pile{},
		Seed:     "",
		PackSize: DefaultPackSize,
	}
}

// Validate reports field errors for values a stored config cannot hold.
func (c Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if err := validate.Positive(c.PackSize); err != nil {
		errs = errs.Append("pack_size", err)
	}
	for name := range c.Piles {
		if err := validate.PileName(name); err != nil {
			errs = errs.Append("piles", err)
			break
		}
	}

	return errs.ToError()
}

// Clone returns a deep copy.
func (c Config) Clone() Config {
	out := c
	out.Piles = maps.Clone(c.Piles)
	if out.Piles == nil {
		out.Piles = map[string]pack.Pile{}
	}
	return out
}

// Equal compares two configs treating a nil and an empty pile table alike.
func (c Config) Equal(other Config) bool {
	return c.Seed == other.Seed &&
		c.PackSize == other.PackSize &&
		maps.Equal(c.Piles, other.Piles)
}

// Manager loads and saves Config through a kv.Store. A nil store is the
// "storage unavailable" condition.
type Manager struct {
	store kv.Store
	log   zerolog.Logger
}

func NewManager(store kv.Store, logger zerolog.Logger) *Manager {
	return &Manager{store: store, log: logger}
}

// Available reports whether a backing store is configured.
func (m *Manager) Available() bool {
	return m.store != nil
}

// Load returns the stored config, or Default when the store is unavailable,
// the key is missing or the stored value is not a valid config.
func (m *Manager) Load(ctx context.Context) Config {
	if m.store == nil {
		m.log.Warn().Ctx(ctx).Msg("storage not available, using default config")
		return Default()
	}

	raw, ok, err := m.store.Get(ctx, Key)
	if err != nil {
		m.log.Warn().Ctx(ctx).Err(err).Msg("failed to load config, using default")
		return Default()
	}
	if !ok {
		return Default()
	}

	cfg, err := decode(raw)
	if err != nil {
		m.log.Warn().Ctx(ctx).Err(err).Msg("failed to parse saved config, using default")
		return Default()
	}

	return cfg
}

// Save writes cfg to the store. Failures are logged and otherwise ignored.
func (m *Manager) Save(ctx context.Context, cfg Config) {
	if m.store == nil {
		m.log.Warn().Ctx(ctx).Msg("storage not available, cannot save config")
		return
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		m.log.Warn().Ctx(ctx).Err(err).Msg("failed to serialize config")
		return
	}

	if err := m.store.Set(ctx, Key, string(data)); err != nil {
		m.log.Warn().Ctx(ctx).Err(err).Msg("failed to save config")
		return
	}

	m.log.Debug().Ctx(ctx).Int("piles", len(cfg.Piles)).Int("pack_size", cfg.PackSize).Msg("config saved")
}

// Reset removes the stored config. The caller resets its own in-memory copy.
func (m *Manager) Reset(ctx context.Context) {
	if m.store == nil {
		return
	}
	if err := m.store.Remove(ctx, Key); err != nil {
		m.log.Warn().Ctx(ctx).Err(err).Msg("failed to clear saved config")
	}
}

func decode(raw string) (Config, error) {
	var cfg Config
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Piles == nil {
		cfg.Piles = map[string]pack.Pile{}
	}
	return cfg, nil
}
