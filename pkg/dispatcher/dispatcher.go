// Package dispatcher implements fire-and-forget delivery of conversation
// events to a remote logging endpoint.
//
// FireLog never blocks its caller and never surfaces an error: delivery
// failures of any kind (missing configuration, timeout, non-200 status,
// transport or serialization errors) are reported only as warning-level
// log lines. Callers that want delivery feedback use Send directly.
package dispatcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/internal/logging"
	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/pkg/event"
)

// DefaultTimeout bounds a single delivery attempt, connection establishment
// through response read.
const DefaultTimeout = 5 * time.Second

// ErrNotConfigured is returned by Send when the endpoint or token is unset.
var ErrNotConfigured = errors.New("logging endpoint or API key not configured")

// StatusError reports a non-200 response from the logging endpoint.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("logging endpoint returned status %d", e.Code)
}

// Config holds the dispatcher's delivery settings. Endpoint and Token
// are both required for transmission; if either is empty every FireLog
// call is skipped with a warning.
type Config struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
}

// Dispatcher posts conversation events to a logging endpoint. The zero
// value is not usable; construct with New. Safe for concurrent use.
type Dispatcher struct {
	endpoint string
	token    string
	client   *http.Client
	log      *logging.Logger
	wg       sync.WaitGroup
}

// New builds a Dispatcher from an explicit Config. A nil logger falls
// back to the process default.
func New(cfg Config, log *logging.Logger) *Dispatcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logging.Default()
	}

	return &Dispatcher{
		endpoint: cfg.Endpoint,
		token:    cfg.Token,
		client:   &http.Client{Timeout: timeout},
		log:      log,
	}
}

// Enabled reports whether both the endpoint and the token are configured.
func (d *Dispatcher) Enabled() bool {
	return d.endpoint != "" && d.token != ""
}

// FireLog schedules asynchronous delivery of rec and returns immediately.
// It has no error channel by contract: every failure path ends in a
// warning-level diagnostic and the event is dropped. There is no retry
// and no ordering guarantee between concurrent calls.
func (d *Dispatcher) FireLog(rec event.Record) {
	if !d.Enabled() {
		d.log.Warn("conversation logger not configured: missing endpoint or API key")
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.Send(context.Background(), rec); err != nil {
			d.logFailure(err)
		}
	}()
}

// Send delivers rec synchronously and reports the outcome. The request is
// bounded by the configured timeout and by ctx, whichever ends first. The
// body is the raw JSON record; success is HTTP 200 only.
func (d *Dispatcher) Send(ctx context.Context, rec event.Record) error {
	if !d.Enabled() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+d.token)

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode}
	}

	return nil
}

// Flush blocks until all in-flight fire-and-forget deliveries finish or
// ctx expires. The dispatcher never calls it implicitly; processes that
// care about draining before teardown do.
func (d *Dispatcher) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) logFailure(err error) {
	var statusErr *StatusError
	switch {
	case errors.As(err, &statusErr):
		d.log.Warn("conversation logger received non-success status", logging.Status(statusErr.Code))
	case isTimeout(err):
		d.log.Warn("conversation logger timed out", logging.Endpoint(d.endpoint))
	default:
		d.log.Warn("conversation logger failed", logging.Error(err))
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
