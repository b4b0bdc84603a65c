package stores

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/colonyops/cubeshuffle/internal/core/config"
	"github.com/colonyops/cubeshuffle/internal/core/kv"
	"github.com/colonyops/cubeshuffle/internal/data/db"
)

// FileStoreName is the JSON file used by the file backend.
const FileStoreName = "storage.json"

// Open resolves the configured backend into a kv.Store and a closer.
//
// A failure to open the backing storage is not fatal: it is logged and the
// returned store is nil, which downstream code treats as "storage
// unavailable". BackendNone always yields a nil store.
func Open(backend config.StoreBackend, dataDir string, opts db.OpenOptions, logger zerolog.Logger) (kv.Store, func()) {
	noop := func() {}

	switch backend {
	case config.BackendNone:
		return nil, noop
	case config.BackendMemory:
		return NewMemoryStore(), noop
	case config.BackendFile:
		return NewFileStore(filepath.Join(dataDir, FileStoreName)), noop
	case config.BackendSQLite:
		database, err := openSQLite(dataDir, opts, logger)
		if err != nil {
			logger.Warn().Err(err).Str("data_dir", dataDir).Msg("sqlite storage not available")
			return nil, noop
		}
		return NewKVStore(database), func() {
			if err := database.Close(); err != nil {
				logger.Error().Err(err).Msg("failed to close database")
			}
		}
	default:
		logger.Warn().Str("backend", string(backend)).Msg("unknown storage backend")
		return nil, noop
	}
}

func openSQLite(dataDir string, opts db.OpenOptions, logger zerolog.Logger) (*db.DB, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	database, err := db.Open(dataDir, opts)
	if err == nil {
		return database, nil
	}

	if !IsCorruptionError(err) {
		return nil, err
	}

	backup, recoverErr := RecoverFromCorruption(dataDir)
	if recoverErr != nil {
		return nil, fmt.Errorf("%w (recovery failed: %v)", err, recoverErr)
	}
	logger.Warn().Str("backup", backup).Msg("database was corrupt, moved aside")

	return db.Open(dataDir, opts)
}
