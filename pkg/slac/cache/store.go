// Package cache persists compiled expressions keyed by their source
// text, so hot expressions skip the scanner and parser on repeat use.
// Entries hold the serialized wire form of the compiled tree.
package cache

import (
	"errors"
	"time"
)

// Store persists serialized expressions.
// Implementations must be safe for concurrent use.
type Store interface {
	// Put stores the serialized tree under a key, overwriting any
	// previous entry.
	Put(key string, data []byte) error

	// Get retrieves a serialized tree.
	// Returns ErrNotFound if no entry exists.
	Get(key string) ([]byte, error)

	// Delete removes an entry. Returns nil if the entry doesn't exist.
	Delete(key string) error

	// Entries returns metadata for all stored entries, newest first.
	Entries() ([]Info, error)

	// Purge removes all entries.
	Purge() error

	// Close releases any resources (connections, files).
	Close() error
}

// Info provides entry metadata without loading the serialized tree.
type Info struct {
	Key       string
	Timestamp time.Time
	Size      int64
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates no entry exists for the key.
	ErrNotFound = errors.New("cache entry not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("cache store closed")
)
