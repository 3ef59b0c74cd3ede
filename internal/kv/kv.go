// Package kv provides the durable key-value capability backing draft and
// preset persistence.
package kv

import "context"

// Store is the minimal key-value contract the persistence layer needs:
// get, set, remove and enumerate by prefix.
type Store interface {
	// Get returns the value for key. The second return is false when the
	// key is absent.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes or overwrites the value for key.
	Set(ctx context.Context, key, value string) error

	// Delete removes the key outright. Deleting a missing key is not an
	// error.
	Delete(ctx context.Context, key string) error

	// Keys returns all keys carrying the prefix, in lexical order.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Close releases the underlying resources.
	Close() error
}
