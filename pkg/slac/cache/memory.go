package cache

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory store. Data is lost when the process
// exits.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]entry
	closed bool
}

type entry struct {
	data      []byte
	timestamp time.Time
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]entry)}
}

// Put implements Store.
func (m *MemoryStore) Put(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	// Copy data to avoid retaining the caller's slice
	stored := make([]byte, len(data))
	copy(stored, data)

	m.data[key] = entry{data: stored, timestamp: time.Now().UTC()}
	return nil
}

// Get implements Store.
func (m *MemoryStore) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	e, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}

	result := make([]byte, len(e.data))
	copy(result, e.data)
	return result, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.data, key)
	return nil
}

// Entries implements Store.
func (m *MemoryStore) Entries() ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	infos := make([]Info, 0, len(m.data))
	for key, e := range m.data {
		infos = append(infos, Info{
			Key:       key,
			Timestamp: e.timestamp,
			Size:      int64(len(e.data)),
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Timestamp.After(infos[j].Timestamp)
	})
	return infos, nil
}

// Purge implements Store.
func (m *MemoryStore) Purge() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	m.data = make(map[string]entry)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.data = nil
	return nil
}

// Len returns the number of entries. Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
