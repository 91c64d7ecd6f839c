package repository

import (
	"context"
	"sync"
)

// MemoryCartStore keeps documents in process memory. Contents are lost on restart.
type MemoryCartStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryCartStore creates an empty in-memory store.
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{docs: make(map[string][]byte)}
}

func (s *MemoryCartStore) Save(_ context.Context, key string, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)

	s.mu.Lock()
	s.docs[key] = buf
	s.mu.Unlock()
	return nil
}

func (s *MemoryCartStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.docs[key]
	if !ok {
		return nil, nil
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, nil
}

func (s *MemoryCartStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.docs, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryCartStore) Ping(context.Context) error {
	return nil
}

// Len returns the number of stored documents.
func (s *MemoryCartStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
