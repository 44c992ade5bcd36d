// Package store provides the key-value persistence backends used by the
// feedback aggregator and related state. Values are JSON-serialized; a value
// that fails to decode is treated as absent rather than surfaced as an error.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-process store for tests and single-run deployments.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]json.RawMessage),
	}
}

// Get decodes the value under key into dest. It reports false when the key is
// missing or the stored value no longer decodes into dest.
func (m *MemoryStore) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.RLock()
	raw, ok := m.values[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, nil
	}
	return true, nil
}

// Set stores the JSON encoding of value under key.
func (m *MemoryStore) Set(_ context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %q: %w", key, err)
	}

	m.mu.Lock()
	m.values[key] = data
	m.mu.Unlock()
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
