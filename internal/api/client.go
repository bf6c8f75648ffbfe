package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client is an authenticated client for the mail server's HTTP API.
type Client struct {
	key        string
	baseURL    string
	httpClient *http.Client
}

// envelope is the part of every response body shared by all endpoints.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// NewClient creates a new API client for the server at address.
func NewClient(address, key string) *Client {
	return &Client{
		key:        key,
		baseURL:    strings.TrimSuffix(address, "/"),
		httpClient: &http.Client{},
	}
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Request sends an authenticated request and decodes the response into out.
//
// A string body is sent as-is, any other non-nil body is JSON encoded.
// Server-reported failures are returned as *RemoteError and network
// failures as *TransportError. Nothing is retried.
func (c *Client) Request(method, path string, body, out any) error {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: err}
	}

	var env envelope
	decodeErr := json.Unmarshal(data, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Error
		if decodeErr != nil || msg == "" {
			msg = strings.TrimSpace(resp.Status + " " + string(data))
		}
		return &RemoteError{StatusCode: resp.StatusCode, Message: msg}
	}

	if decodeErr != nil {
		return &RemoteError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("malformed response: %v", decodeErr),
		}
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "request was not successful"
		}
		return &RemoteError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &RemoteError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("malformed response: %v", err),
		}
	}

	return nil
}

// Get sends a GET request.
func (c *Client) Get(path string, out any) error {
	return c.Request(http.MethodGet, path, nil, out)
}

// Post sends a POST request.
func (c *Client) Post(path string, body, out any) error {
	return c.Request(http.MethodPost, path, body, out)
}

// Put sends a PUT request.
func (c *Client) Put(path string, body, out any) error {
	return c.Request(http.MethodPut, path, body, out)
}

// Delete sends a DELETE request.
func (c *Client) Delete(path string, body, out any) error {
	return c.Request(http.MethodDelete, path, body, out)
}

// setAuthHeaders sets the authorization headers on a request.
func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", "bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")
}
