// Package kv provides the persistent key-value store the repositories keep
// their collection blobs in: a process-wide mapping from string keys to
// serialized values. The app originally kept this data in the device's
// async key-value storage; here it lives in an embedded SQLite table.
package kv

import "context"

// Store is the underlying storage contract. All operations may suspend on
// I/O and may fail with a storage error; there is no transactionality
// across keys.
type Store interface {
	// Get returns the value stored under key, or (nil, nil) if the key
	// is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
