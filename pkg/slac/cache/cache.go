package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/DennisPrediger/SLAC-sub000/pkg/slac"
)

// Cache serializes compiled expressions into a Store and back,
// keying entries by a digest of the source text.
type Cache struct {
	store Store
}

// New wraps a Store in a Cache.
func New(store Store) *Cache {
	return &Cache{store: store}
}

// Key returns the store key for a source text.
func Key(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Store serializes and saves a compiled expression for its source.
func (c *Cache) Store(source string, expr slac.Expression) error {
	data, err := slac.MarshalExpression(expr)
	if err != nil {
		return fmt.Errorf("serialize expression: %w", err)
	}
	return c.store.Put(Key(source), data)
}

// Load retrieves and deserializes the expression compiled from
// source. The second return is false on a cache miss.
func (c *Cache) Load(source string) (slac.Expression, bool, error) {
	data, err := c.store.Get(Key(source))
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	expr, err := slac.UnmarshalExpression(data)
	if err != nil {
		return nil, false, fmt.Errorf("deserialize expression: %w", err)
	}
	return expr, true, nil
}

// Invalidate drops the entry for a source text.
func (c *Cache) Invalidate(source string) error {
	return c.store.Delete(Key(source))
}

// Close closes the underlying store.
func (c *Cache) Close() error {
	return c.store.Close()
}
