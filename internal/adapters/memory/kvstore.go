package memory

import (
	"sync"

	"taskquest/internal/ports"
)

// KVStore implements ports.KeyValueStore in process memory.
// Contents are lost when the process exits.
type KVStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// Ensure KVStore implements KeyValueStore
var _ ports.KeyValueStore = (*KVStore)(nil)

// NewKVStore creates an empty in-memory store
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key
func (s *KVStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set stores a copy of value under key
func (s *KVStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = append([]byte(nil), value...)
	return nil
}

// Close is a no-op
func (s *KVStore) Close() error {
	return nil
}
