// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP plumbing shared by the dispatcher and
the test service.

# Transport Middleware

Round trippers wrap the dispatcher's http.Client transport:

	transport := middleware.WithRequestID(middleware.WithLogging(http.DefaultTransport))

WithRequestID sets X-Request-ID to a random UUID when the request has
none; it wraps WithLogging so the id shows up in the log lines.
WithLogging logs "request completed" with method, path, status,
response size, and duration_ms, or "request failed" with the error.

# JSON Helpers

Used by handlers that play the computation service in tests:

	middleware.JSONResponse(w, http.StatusOK, result)
	middleware.ErrorResponse(w, http.StatusBadRequest, "too many numbers")
	err := middleware.ParseJSONBody(r, &req)

ErrorResponse produces the service's error shape:

	{"error": "too many numbers"}
*/
package middleware
