package session

import (
	"context"
	"sync"
)

// MemoryStore keeps the counter in memory. It starts at a fixed index and
// never touches the file system.
type MemoryStore struct {
	mu   sync.Mutex
	next int
}

// NewMemoryStore creates a store whose first index is start. Values below
// FirstIndex are raised to FirstIndex.
func NewMemoryStore(start int) *MemoryStore {
	return &MemoryStore{next: max(start, FirstIndex)}
}

func (s *MemoryStore) NextIndex(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next, nil
}

func (s *MemoryStore) RecordUsed(ctx context.Context, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = max(s.next, n+1)
	return nil
}

var _ Store = (*MemoryStore)(nil)
