package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/pkg/event"
)

func insertN(t *testing.T, s *MemoryStore, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		ev := event.NewStored(event.Record{"seq": i}, "")
		require.NoError(t, s.Insert(context.Background(), ev))
	}
}

func TestMemoryStore_InsertAndCount(t *testing.T) {
	s := NewMemoryStore(10)
	defer s.Close()

	insertN(t, s, 3)

	count, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestMemoryStore_RecentNewestFirst(t *testing.T) {
	s := NewMemoryStore(10)
	defer s.Close()

	insertN(t, s, 5)

	events, err := s.Recent(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, 4, events[0].Payload["seq"])
	assert.Equal(t, 3, events[1].Payload["seq"])
	assert.Equal(t, 2, events[2].Payload["seq"])
}

func TestMemoryStore_RecentLimitLargerThanCount(t *testing.T) {
	s := NewMemoryStore(10)
	defer s.Close()

	insertN(t, s, 2)

	events, err := s.Recent(context.Background(), 50)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestMemoryStore_CapacityEviction(t *testing.T) {
	s := NewMemoryStore(3)
	defer s.Close()

	insertN(t, s, 5)

	count, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	events, err := s.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, events, 3)
	// Oldest two were evicted.
	assert.Equal(t, 4, events[0].Payload["seq"])
	assert.Equal(t, 2, events[2].Payload["seq"])
}

func TestMemoryStore_Closed(t *testing.T) {
	s := NewMemoryStore(10)
	s.Close()

	err := s.Insert(context.Background(), event.NewStored(event.Record{}, ""))
	assert.ErrorIs(t, err, ErrClosed)

	_, err = s.Recent(context.Background(), 1)
	assert.ErrorIs(t, err, ErrClosed)

	_, err = s.Count(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestMemoryStore_ConcurrentInsert(t *testing.T) {
	s := NewMemoryStore(1000)
	defer s.Close()

	done := make(chan error, 10)
	for g := 0; g < 10; g++ {
		go func(g int) {
			var err error
			for i := 0; i < 50; i++ {
				ev := event.NewStored(event.Record{"g": fmt.Sprintf("%d-%d", g, i)}, "")
				if e := s.Insert(context.Background(), ev); e != nil {
					err = e
				}
			}
			done <- err
		}(g)
	}
	for g := 0; g < 10; g++ {
		require.NoError(t, <-done)
	}

	count, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(500), count)
}
