// Package sync is a stub client for the out-of-scope cloud-file-sync
// collaborators (WebDAV/Dropbox) the specification names as external
// persistence backends. It pushes a catalog/setlist snapshot to a remote
// endpoint with exponential-backoff retry, the same shape the teacher
// uses for webhook delivery.
package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

// Client pushes snapshots to a remote sync endpoint with retry.
type Client struct {
	httpClient *http.Client
	maxRetries uint64
	timeout    time.Duration
}

// NewClient builds a Client with the teacher's retry budget: up to 6
// retries after the first attempt (7 attempts), capped at 60 seconds
// total.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		maxRetries: 6,
		timeout:    10 * time.Second,
	}
}

// Snapshot is the payload pushed to the remote sync endpoint: an opaque
// document identifier and its serialized chorddown source.
type Snapshot struct {
	DocumentID string    `json:"document_id"`
	Source     string    `json:"source"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Result reports the outcome of a Push.
type Result struct {
	Success  bool          `json:"success"`
	Attempts int           `json:"attempts"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Push uploads snapshot to endpointURL, retrying transient failures with
// jittered exponential backoff up to c.maxRetries times.
func (c *Client) Push(ctx context.Context, endpointURL string, snapshot Snapshot) (*Result, error) {
	if endpointURL == "" {
		return nil, fmt.Errorf("sync: endpoint URL is empty")
	}

	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("sync: marshaling snapshot: %w", err)
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 1 * time.Second
	expBackoff.MaxInterval = 16 * time.Second
	expBackoff.MaxElapsedTime = 60 * time.Second
	expBackoff.RandomizationFactor = 0.5

	withRetry := backoff.WithContext(backoff.WithMaxRetries(expBackoff, c.maxRetries), ctx)

	start := time.Now()
	attempts := 0
	// One idempotency key per Push call, replayed on every retried
	// attempt so the remote endpoint can de-duplicate a request it
	// already applied but whose response we missed.
	idempotencyKey := uuid.New().String()

	operation := func() error {
		attempts++

		reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(reqCtx, http.MethodPut, endpointURL, bytes.NewReader(jsonData))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("sync: creating request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Attempt", fmt.Sprintf("%d", attempts))
		req.Header.Set("X-Idempotency-Key", idempotencyKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("sync: attempt %d failed: %w", attempts, err)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("sync: attempt %d: endpoint returned status %d: %s", attempts, resp.StatusCode, string(body))
		}
		return nil
	}

	err = backoff.Retry(operation, withRetry)
	result := &Result{
		Success:  err == nil,
		Attempts: attempts,
		Duration: time.Since(start),
	}
	if err != nil {
		result.Error = err.Error()
		return result, err
	}
	return result, nil
}
