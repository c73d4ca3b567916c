// Package kvstore provides durable key/value storage for whole-collection
// snapshots. Values are opaque byte blobs; callers read, modify and rewrite a
// whole collection per mutation, there are no partial updates.
package kvstore

import "context"

// Store is the persistence contract shared by all backends.
type Store interface {
	// Get returns the value stored under key, or (nil, nil) when the key
	// is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value. A failed
	// write leaves the previous value intact and reports
	// apperrors.ErrStorageFull.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}
