// Package test contains helpers for the tests of the dashboard API.
package test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type reply struct {
	status int
	body   string
}

// BackendRequest is a request received by the fake finance backend.
type BackendRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   string
}

// Backend is a fake finance backend. It answers requests by "METHOD /path",
// everything else gets a 404.
type Backend struct {
	*httptest.Server

	mu       sync.Mutex
	replies  map[string]reply
	requests []BackendRequest
}

// NewBackend starts a fake backend that is closed when the test ends.
func NewBackend(t *testing.T) *Backend {
	b := &Backend{replies: map[string]reply{}}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.Close)
	return b
}

// On sets the reply for a route like "GET /Budgets/".
func (b *Backend) On(route string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.replies[route] = reply{status, body}
}

// Requests returns the requests received so far.
func (b *Backend) Requests() []BackendRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]BackendRequest(nil), b.requests...)
}

// Received returns the requests received for a route like "POST /Budgets/".
func (b *Backend) Received(route string) []BackendRequest {
	var matching []BackendRequest
	for _, r := range b.Requests() {
		if r.Method+" "+r.Path == route {
			matching = append(matching, r)
		}
	}
	return matching
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.requests = append(b.requests, BackendRequest{r.Method, r.URL.Path, r.Header.Clone(), string(body)})
	reply, ok := b.replies[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.WriteHeader(reply.status)
	_, _ = w.Write([]byte(reply.body))
}
