package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/pkg/event"
)

// CollectorClient queries a collector's event API.
type CollectorClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewCollectorClient(baseURL, apiKey string) *CollectorClient {
	return &CollectorClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Recent fetches up to limit of the most recently received events.
func (c *CollectorClient) Recent(limit int) ([]*event.Stored, error) {
	url := fmt.Sprintf("%s/api/v1/events/recent?limit=%d", c.baseURL, limit)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("collector returned status %d", resp.StatusCode)
	}

	var body struct {
		Count  int             `json:"count"`
		Events []*event.Stored `json:"events"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return body.Events, nil
}

// Health reports whether the collector answers its health endpoint.
func (c *CollectorClient) Health() error {
	resp, err := c.client.Get(c.baseURL + "/healthz")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("collector returned status %d", resp.StatusCode)
	}
	return nil
}
