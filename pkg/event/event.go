// Package event defines the conversation event payload and the stored
// envelope the collector wraps it in.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Record is a schema-less conversation event. No field is required; the
// dispatcher forwards it verbatim and the collector stores it opaquely.
// The only constraint is that it must be JSON-serializable.
type Record map[string]any

// Stored wraps a Record with the metadata the collector attaches on
// receipt. It never appears on the wire between dispatcher and collector;
// the dispatcher posts the raw record.
type Stored struct {
	ID         string    `json:"event_id"`
	ReceivedAt time.Time `json:"received_at"`
	SourceIP   string    `json:"source_ip,omitempty"`
	Payload    Record    `json:"payload"`
}

// NewStored builds a Stored envelope with a fresh ID and receipt time.
func NewStored(payload Record, sourceIP string) *Stored {
	return &Stored{
		ID:         uuid.New().String(),
		ReceivedAt: time.Now().UTC(),
		SourceIP:   sourceIP,
		Payload:    payload,
	}
}
