package stores

import (
	"context"

	"github.com/colonyops/cubeshuffle/internal/core/kv"
	pkgkv "github.com/colonyops/cubeshuffle/pkg/kv"
)

// MemoryStore implements kv.Store in process memory. Nothing survives exit.
type MemoryStore struct {
	data *pkgkv.Store[string, string]
}

var _ kv.Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: pkgkv.New[string, string]()}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.data.Get(key)
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.data.Set(key, value)
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.data.Delete(key)
	return nil
}

// Entries returns a copy of the stored data.
func (s *MemoryStore) Entries() map[string]string {
	return s.data.Snapshot()
}
