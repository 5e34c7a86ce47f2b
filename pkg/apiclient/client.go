// Package apiclient issues authenticated requests against one resource of the
// finance backend.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocketledger/dashboard/pkg/credentials"
	"github.com/rs/zerolog"
)

// RequestIDHeader carries the correlation id of every backend request.
const RequestIDHeader = "X-Request-ID"

type contextKey string

// requestIDKey is the context key for an inbound request id.
const requestIDKey contextKey = "request-id"

// WithRequestID returns a context whose backend requests reuse the given
// request id instead of generating a new one.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// Options configure a Client.
type Options struct {
	// IncludeContentType sets "Content-Type: application/json" on every request
	// that carries a body.
	IncludeContentType bool

	// ExtraHeaders are set on every request.
	ExtraHeaders map[string]string

	// HTTPClient is used to send requests. Defaults to a client without timeout.
	HTTPClient *http.Client
}

// Response is a completed HTTP exchange with the body fully read.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Empty reports whether the response has no content.
func (r *Response) Empty() bool {
	return r.Status == http.StatusNoContent || len(bytes.TrimSpace(r.Body)) == 0
}

// Client issues requests relative to the base path of a resource.
//
// A Client holds no mutable state and can be shared for the lifetime of a
// screen or rebuilt per request.
type Client struct {
	baseURL  string
	resource string
	store    credentials.Store
	options  Options
}

// New creates a Client for the resource at baseURL/resource.
func New(baseURL, resource string, store credentials.Store, options Options) *Client {
	if options.HTTPClient == nil {
		options.HTTPClient = &http.Client{}
	}

	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		resource: strings.Trim(resource, "/"),
		store:    store,
		options:  options,
	}
}

// Resource returns the resource name the client is bound to.
func (c *Client) Resource() string {
	return c.resource
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, body)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, nil)
}

// URL returns the absolute URL for a path below the resource.
//
// The resource root always ends in a slash, paths below it never do.
func (c *Client) URL(path string) string {
	path = strings.Trim(path, "/")
	if path == "" {
		return fmt.Sprintf("%s/%s/", c.baseURL, c.resource)
	}
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.resource, path)
}

// Do issues a request. Any outcome other than a 2xx response is returned
// as an *ExchangeError.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, &ExchangeError{Err: fmt.Errorf("could not encode the request body: %w", err)}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), reader)
	if err != nil {
		return nil, &ExchangeError{Err: err}
	}

	req.Header.Set("Accept", "application/json")
	if body != nil && c.options.IncludeContentType {
		req.Header.Set("Content-Type", "application/json")
	}

	for header, value := range c.options.ExtraHeaders {
		req.Header.Set(header, value)
	}

	requestID, _ := ctx.Value(requestIDKey).(string)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set(RequestIDHeader, requestID)

	// A missing token is not fatal here, the backend rejects the request
	// if it needs authentication.
	if c.store != nil {
		creds, err := c.store.Get(ctx)
		if err != nil {
			return nil, &ExchangeError{Err: fmt.Errorf("could not read the stored credentials: %w", err)}
		}

		if creds.Present() {
			req.Header.Set("Authorization", "Bearer "+creds.Token)
		}
	}

	logger := zerolog.Ctx(ctx).With().
		Str("request-id", requestID).
		Str("method", method).
		Str("url", req.URL.String()).
		Logger()

	start := time.Now()
	resp, err := c.options.HTTPClient.Do(req)
	if err != nil {
		observe(c.resource, method, "error", start)
		logger.Debug().Err(err).Msg("backend request failed")
		return nil, &ExchangeError{Sent: true, Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	observe(c.resource, method, fmt.Sprint(resp.StatusCode), start)
	if err != nil {
		logger.Debug().Err(err).Int("status", resp.StatusCode).Msg("reading the backend response failed")
		return nil, &ExchangeError{Sent: true, Err: err}
	}

	response := &Response{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   b,
	}

	logger.Debug().Int("status", resp.StatusCode).Int("size", len(b)).Dur("latency", time.Since(start)).Msg("backend request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ExchangeError{Sent: true, Response: response, Err: fmt.Errorf("%w %d", ErrStatus, resp.StatusCode)}
	}

	return response, nil
}
