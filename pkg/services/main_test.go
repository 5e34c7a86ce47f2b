package services_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/pocketledger/dashboard/pkg/credentials"
	"github.com/pocketledger/dashboard/pkg/services"
	"github.com/stretchr/testify/require"
)

type reply struct {
	status int
	body   string
}

type request struct {
	method string
	path   string
	body   string
}

// fakeBackend answers requests by "METHOD /path" and records them.
type fakeBackend struct {
	mu       sync.Mutex
	replies  map[string]reply
	requests []request
}

func (f *fakeBackend) on(route string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[route] = reply{status, body}
}

func (f *fakeBackend) received() []request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]request(nil), f.requests...)
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, request{r.Method, r.URL.Path, string(b)})
	reply, ok := f.replies[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.WriteHeader(reply.status)
	_, _ = w.Write([]byte(reply.body))
}

var now = time.Date(2024, time.May, 14, 16, 30, 0, 0, time.UTC)

// setup returns services talking to a fake backend with a signed in user.
func setup(t *testing.T) (*services.Services, *fakeBackend, *credentials.MemoryStore) {
	fake := &fakeBackend{replies: map[string]reply{}}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	store := credentials.NewMemoryStore()
	require.Nil(t, store.Set(context.Background(), credentials.Credentials{Token: "token", UserID: "1"}))

	s := services.New(services.Backend{
		URL:   server.URL,
		Store: store,
		Now:   func() time.Time { return now },
	})

	return s, fake, store
}

// servicesWithoutBackend returns services pointing at a closed server.
func servicesWithoutBackend(t *testing.T) *services.Services {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	return services.New(services.Backend{URL: url, Store: credentials.NewMemoryStore()})
}
