// Package storage persists received conversation events.
package storage

import (
	"context"
	"errors"

	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/pkg/event"
)

var ErrClosed = errors.New("store is closed")

// Store is the persistence interface for received events. Implementations
// must be safe for concurrent use.
type Store interface {
	// Insert appends one event.
	Insert(ctx context.Context, ev *event.Stored) error

	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, limit int) ([]*event.Stored, error)

	// Count returns the number of retained events.
	Count(ctx context.Context) (int64, error)

	Close()
}
