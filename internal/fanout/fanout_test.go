package fanout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/pkg/event"
)

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}

	err := p.Publish(context.Background(), event.NewStored(event.Record{"a": 1}, ""))
	assert.NoError(t, err)

	p.Close()
}

func TestNATSPublisher_ConnectFailure(t *testing.T) {
	// Nothing listens here; Connect must fail rather than hang.
	_, err := NewNATSPublisher("nats://127.0.0.1:1", "aerochat.events")
	assert.Error(t, err)
}
