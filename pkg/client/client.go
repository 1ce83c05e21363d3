// Package client is a typed HTTP gateway for the Chirp note API.
//
// Client methods return errors; the BestEffort wrapper applies the
// browser client's policy of collapsing every failure into an empty or
// nil result at the rendering boundary.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Note is the wire representation of a note. ParentID is nil for
// top-level notes.
type Note struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	ParentID  *int64    `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
}

// DeleteResult is the response body of a delete. Changes counts the
// note plus its cascaded replies; 0 means the id did not exist.
type DeleteResult struct {
	Message string `json:"message"`
	Changes int64  `json:"changes"`
}

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
}

// Client calls the note API over HTTP.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a Client for the API at baseURL (e.g. "http://localhost:3000").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// NewWithHTTPClient creates a Client using the given http.Client.
func NewWithHTTPClient(baseURL string, httpc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpc: httpc}
}

// Notes fetches all top-level notes, newest first.
func (c *Client) Notes(ctx context.Context) ([]Note, error) {
	var out []Note
	if err := c.do(ctx, http.MethodGet, "/api/notes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Replies fetches the replies to the given note, oldest first. An
// unknown id yields an empty slice.
func (c *Client) Replies(ctx context.Context, noteID int64) ([]Note, error) {
	var out []Note
	path := fmt.Sprintf("/api/notes/%d/replies", noteID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts a new note, or a reply when parentID is non-nil, and
// returns the stored record.
func (c *Client) Create(ctx context.Context, text string, parentID *int64) (*Note, error) {
	body := map[string]any{"text": text, "parent_id": parentID}
	var out Note
	if err := c.do(ctx, http.MethodPost, "/api/notes", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a note and its replies. Repeating a delete succeeds
// with Changes=0.
func (c *Client) Delete(ctx context.Context, noteID int64) (*DeleteResult, error) {
	var out DeleteResult
	path := fmt.Sprintf("/api/notes/%d", noteID)
	if err := c.do(ctx, http.MethodDelete, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		if eb.Error == "" {
			eb.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: eb.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}
