// Package kv provides the persistence backends for the application state.
// Each collection is stored as a single JSON blob under a well-known key.
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value exists for the key.
var ErrKeyNotFound = errors.New("key not found")

// Store reads and writes opaque JSON blobs keyed by collection name.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
