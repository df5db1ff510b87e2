package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/pkg/event"
)

// PostgresStore is an append-only event log backed by a single table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS conversation_events (
		id          UUID PRIMARY KEY,
		received_at TIMESTAMPTZ NOT NULL,
		source_ip   TEXT NOT NULL DEFAULT '',
		payload     JSONB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS conversation_events_received_at_idx
		ON conversation_events (received_at DESC);
`

func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	config.MaxConns = 10
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create events table: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Insert(ctx context.Context, ev *event.Stored) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	query := `
		INSERT INTO conversation_events (id, received_at, source_ip, payload)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := s.pool.Exec(ctx, query, ev.ID, ev.ReceivedAt, ev.SourceIP, payload); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

func (s *PostgresStore) Recent(ctx context.Context, limit int) ([]*event.Stored, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, received_at, source_ip, payload
		FROM conversation_events
		ORDER BY received_at DESC
		LIMIT $1
	`

	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var out []*event.Stored
	for rows.Next() {
		var ev event.Stored
		var payload []byte
		if err := rows.Scan(&ev.ID, &ev.ReceivedAt, &ev.SourceIP, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		if err := json.Unmarshal(payload, &ev.Payload); err != nil {
			return nil, fmt.Errorf("failed to decode payload: %w", err)
		}
		out = append(out, &ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var count int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM conversation_events`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}
