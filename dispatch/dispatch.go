// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/algoviz/middleware"
	"github.com/danielhkuo/algoviz/models"
)

// User-facing failure messages
const (
	MsgGeneric          = "An error occurred."
	MsgConnectionFailed = "Connection failed."
)

// maxErrorBodyBytes bounds how much of a non-2xx body is read.
// Success bodies are decoded in full since step traces grow with the
// input range.
const maxErrorBodyBytes = 64 << 10

// ServerError is a non-2xx reply from the computation service
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

// TransportError means the exchange never produced a usable reply:
// the request failed, timed out, or a 2xx body could not be decoded
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return MsgConnectionFailed
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client posts validated input to the computation service
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the service at baseURL.
// A zero timeout means requests may wait forever.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithTransport(baseURL, timeout, http.DefaultTransport)
}

// NewClientWithTransport is NewClient over a custom base transport
func NewClientWithTransport(baseURL string, timeout time.Duration, base http.RoundTripper) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: middleware.WithRequestID(middleware.WithLogging(base)),
		},
	}
}

// Sort handles POST /counting-sort
func (c *Client) Sort(ctx context.Context, numbers []float64) (models.SortResult, error) {
	return post[models.SortResult](ctx, c, models.PathCountingSort, models.SortRequest{Numbers: numbers})
}

// Parity handles POST /parity
func (c *Client) Parity(ctx context.Context, binary, mode string) (models.ParityResult, error) {
	return post[models.ParityResult](ctx, c, models.PathParity, models.ParityRequest{Binary: binary, Type: mode})
}

func post[T any](ctx context.Context, c *Client, path string, payload interface{}) (T, error) {
	var result T

	body, err := json.Marshal(payload)
	if err != nil {
		return result, fmt.Errorf("failed to encode request: %w", err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return result, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Error("connection failed, make sure the server is running",
			"url", url,
			"error", err,
		)
		return result, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		if err != nil {
			slog.Error("failed to read response", "url", url, "error", err)
			return result, &TransportError{Err: err}
		}
		return result, decodeError(resp.StatusCode, raw)
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Error("failed to decode response", "url", url, "status", resp.StatusCode, "error", err)
		return result, &TransportError{Err: fmt.Errorf("decode %s response: %w", path, err)}
	}
	return result, nil
}

// decodeError falls back to MsgGeneric when the body carries no message
func decodeError(status int, raw []byte) *ServerError {
	var payload models.ErrorResponse
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Error == "" {
		slog.Warn("service error without message", "status", status)
		return &ServerError{Status: status, Message: MsgGeneric}
	}
	slog.Info("service rejected request", "status", status, "error", payload.Error)
	return &ServerError{Status: status, Message: payload.Error}
}
