// Package fanout publishes stored events to downstream consumers.
package fanout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/pkg/event"
)

// Publisher fans a stored event out to interested consumers. Publishing is
// best-effort: the collector logs failures and keeps the ingest request
// successful.
type Publisher interface {
	Publish(ctx context.Context, ev *event.Stored) error
	Close()
}

type natsPublisher struct {
	conn    *nats.Conn
	subject string
}

// NewNATSPublisher connects to NATS and publishes every event as JSON to
// the given subject.
func NewNATSPublisher(url, subject string) (Publisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("aerochat-collector"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.Timeout(5*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &natsPublisher{conn: conn, subject: subject}, nil
}

func (p *natsPublisher) Publish(ctx context.Context, ev *event.Stored) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return p.conn.Publish(p.subject, data)
}

func (p *natsPublisher) Close() {
	if p.conn != nil {
		p.conn.Drain()
	}
}

// NoopPublisher discards every event. Used when fan-out is disabled or
// the NATS connection could not be established.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, ev *event.Stored) error {
	return nil
}

func (NoopPublisher) Close() {}
