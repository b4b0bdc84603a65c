// Package kv defines the string key-value storage boundary used for
// persisted session configuration.
package kv

import "context"

// Store is a string-keyed, string-valued persistent store.
//
// A nil Store is valid at every call site that accepts one and means the
// backing storage is unavailable. Get reports a missing key with ok=false and
// a nil error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
