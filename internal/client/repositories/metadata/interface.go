// Package metadata provides the key/value storage scopes used by the client.
//
// Two scopes mirror the browser storages the front-end relies on:
//   - persistent ("remember me"): SQLiteRepository, survives restarts;
//   - session: MemoryRepository, lives as long as the process.
//
// Get returns (nil, nil) for a missing key in both implementations.
package metadata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes every given key. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
