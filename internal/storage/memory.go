package storage

import (
	"context"
	"sync"

	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/pkg/event"
)

// MemoryStore keeps the most recent events in a fixed-capacity ring.
// It is the default store and the test double for the postgres store.
type MemoryStore struct {
	mu       sync.RWMutex
	events   []*event.Stored
	capacity int
	closed   bool
}

const defaultCapacity = 10000

func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &MemoryStore{
		events:   make([]*event.Stored, 0, capacity),
		capacity: capacity,
	}
}

func (s *MemoryStore) Insert(ctx context.Context, ev *event.Stored) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	s.events = append(s.events, ev)
	if len(s.events) > s.capacity {
		// Drop the oldest; shift rather than reslice to release the head.
		copy(s.events, s.events[1:])
		s.events = s.events[:s.capacity]
	}
	return nil
}

func (s *MemoryStore) Recent(ctx context.Context, limit int) ([]*event.Stored, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	if limit <= 0 || limit > len(s.events) {
		limit = len(s.events)
	}

	out := make([]*event.Stored, 0, limit)
	for i := len(s.events) - 1; i >= len(s.events)-limit; i-- {
		out = append(out, s.events[i])
	}
	return out, nil
}

func (s *MemoryStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, ErrClosed
	}
	return int64(len(s.events)), nil
}

func (s *MemoryStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.events = nil
}
