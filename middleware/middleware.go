// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/danielhkuo/algoviz/models"
)

// RequestIDHeader carries the per-request correlation id
const RequestIDHeader = "X-Request-ID"

// RoundTripFunc adapts a function to http.RoundTripper
type RoundTripFunc func(*http.Request) (*http.Response, error)

func (f RoundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// WithRequestID stamps outgoing requests with a fresh X-Request-ID
// unless the caller already set one
func WithRequestID(next http.RoundTripper) http.RoundTripper {
	return RoundTripFunc(func(r *http.Request) (*http.Response, error) {
		if r.Header.Get(RequestIDHeader) != "" {
			return next.RoundTrip(r)
		}
		// RoundTrippers must not modify the caller's request
		r = r.Clone(r.Context())
		r.Header.Set(RequestIDHeader, uuid.NewString())
		return next.RoundTrip(r)
	})
}

// WithLogging wraps a transport with request logging
func WithLogging(next http.RoundTripper) http.RoundTripper {
	return RoundTripFunc(func(r *http.Request) (*http.Response, error) {
		start := time.Now()

		slog.Debug("request started",
			"method", r.Method,
			"url", r.URL.String(),
			"request_id", r.Header.Get(RequestIDHeader),
		)

		resp, err := next.RoundTrip(r)

		duration := time.Since(start)
		if err != nil {
			slog.Warn("request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"duration_ms", duration.Milliseconds(),
				"error", err,
			)
			return nil, err
		}

		size := "unknown"
		if resp.ContentLength >= 0 {
			size = humanize.Bytes(uint64(resp.ContentLength))
		}
		slog.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", resp.StatusCode,
			"size", size,
			"duration_ms", duration.Milliseconds(),
			"request_id", r.Header.Get(RequestIDHeader),
		)
		return resp, nil
	})
}

// JSONResponse writes a JSON response
func JSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// ErrorResponse writes a JSON error response in the computation
// service's shape: {"error": message}
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	JSONResponse(w, statusCode, models.ErrorResponse{Error: message})
}

// ParseJSONBody parses the request body into the given struct
func ParseJSONBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}
