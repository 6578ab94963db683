package heuristmesh

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Mesh sequencer endpoints. All operations are JSON POSTs.
const (
	pathSyncRequest = "/mesh_request"
	pathTaskCreate  = "/mesh_task_create"
	pathTaskQuery   = "/mesh_task_query"
)

// syncPayload is the body of a synchronous invocation.
type syncPayload struct {
	APIKey  string       `json:"api_key"`
	AgentID string       `json:"agent_id"`
	Input   requestInput `json:"input"`
}

// taskCreatePayload is the body of a task creation request.
type taskCreatePayload struct {
	APIKey      string       `json:"api_key"`
	AgentID     string       `json:"agent_id"`
	AgentType   string       `json:"agent_type"`
	TaskDetails requestInput `json:"task_details"`
}

// taskQueryPayload is the body of a task status poll.
type taskQueryPayload struct {
	APIKey  string `json:"api_key"`
	AgentID string `json:"agent_id"`
	TaskID  string `json:"task_id"`
}

// post performs one authenticated round trip: marshal payload, POST, read
// body, map non-2xx to *HTTPError and decode 2xx JSON into out. The api_key
// body field is what the sequencer reads; the Authorization header is sent
// alongside for gateways that expect bearer auth. No retries.
func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posting to %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", path, err)
	}

	c.logger.Debug("mesh request completed",
		"path", path,
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Path: path, Err: err}
	}
	return nil
}
