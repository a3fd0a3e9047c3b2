// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/algoviz/cliparse"
	"github.com/danielhkuo/algoviz/middleware"
	"github.com/danielhkuo/algoviz/models"
)

// Call is one request received by a FakeService
type Call struct {
	Path        string
	Body        []byte
	ContentType string
	RequestID   string
}

type reply struct {
	status int
	body   interface{}
	raw    *string
}

// MsgMalformedBody is the fake service's reply to a body that is not
// the endpoint's JSON request
const MsgMalformedBody = "Invalid JSON body."

// FakeService stands in for the computation service.
// It records every request and answers with canned replies.
type FakeService struct {
	server *httptest.Server

	mu      sync.Mutex
	calls   []Call
	replies map[string]reply
	delay   time.Duration
}

// NewFakeService starts a fake service that is closed when the test ends.
// Malformed bodies answer 400 and paths without a configured reply answer
// 500, both with an error body.
func NewFakeService(t *testing.T) *FakeService {
	t.Helper()

	f := &FakeService{replies: make(map[string]reply)}

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+models.PathCountingSort, f.handle)
	mux.HandleFunc("POST "+models.PathParity, f.handle)

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *FakeService) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))

	f.mu.Lock()
	f.calls = append(f.calls, Call{
		Path:        r.URL.Path,
		Body:        body,
		ContentType: r.Header.Get("Content-Type"),
		RequestID:   r.Header.Get(middleware.RequestIDHeader),
	})
	rep, ok := f.replies[r.URL.Path]
	delay := f.delay
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	var req interface{} = &models.SortRequest{}
	if r.URL.Path == models.PathParity {
		req = &models.ParityRequest{}
	}

	switch {
	case middleware.ParseJSONBody(r, req) != nil:
		middleware.ErrorResponse(w, http.StatusBadRequest, MsgMalformedBody)
	case !ok:
		middleware.ErrorResponse(w, http.StatusInternalServerError, "no reply configured")
	case rep.raw != nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(rep.status)
		io.WriteString(w, *rep.raw)
	default:
		middleware.JSONResponse(w, rep.status, rep.body)
	}
}

// URL returns the base URL of the fake service
func (f *FakeService) URL() string {
	return f.server.URL
}

// Reply sets the JSON reply for path
func (f *FakeService) Reply(path string, status int, body interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[path] = reply{status: status, body: body}
}

// ReplyRaw sets a verbatim reply body for path
func (f *FakeService) ReplyRaw(path string, status int, raw string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[path] = reply{status: status, raw: &raw}
}

// ReplyError answers path with {"error": message}
func (f *FakeService) ReplyError(path string, status int, message string) {
	f.Reply(path, status, models.ErrorResponse{Error: message})
}

// Delay holds every reply for d, or until the client goes away
func (f *FakeService) Delay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delay = d
}

// Calls returns a copy of the requests received so far
func (f *FakeService) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// UnreachableURL returns the URL of a server that has already shut down
func UnreachableURL(t *testing.T) string {
	t.Helper()
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	return url
}

// GetTestConfig returns a configuration pointing at serviceURL with
// step delays disabled
func GetTestConfig(serviceURL string) cliparse.Config {
	return cliparse.Config{
		ServerURL: serviceURL,
		Timeout:   5 * time.Second,
		ShowSteps: true,
		ShowDelay: 0,
		StepDelay: 0,
		LogLevel:  "error",
	}
}
