package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps slots in process memory. It backs the engine when the
// durable store is unreachable, and doubles as the test store.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, slot string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.slots[slot]
	if !ok {
		return nil, ErrSlotNotFound
	}

	cp := make([]byte, len(val))
	copy(cp, val)
	return cp, nil
}

func (s *MemoryStore) Save(_ context.Context, slot string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	s.slots[slot] = cp
	return nil
}
