// Package testutil provides testing utilities for the Enhetsregisteret client.
package testutil

import (
	"embed"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"time"
)

//go:embed testdata/*.json
var fixtures embed.FS

// Fixture returns the contents of testdata/<name>.json. It panics on an
// unknown name.
func Fixture(name string) []byte {
	b, err := fixtures.ReadFile("testdata/" + name + ".json")
	if err != nil {
		panic(fmt.Sprintf("testutil: unknown fixture %q: %v", name, err))
	}
	return b
}

// MockResponse defines the behavior for a mock registry route.
type MockResponse struct {
	StatusCode int
	Body       []byte
	Headers    map[string]string
	Delay      time.Duration
}

// MockRegistry is a configurable mock Enhetsregisteret server for testing.
//
// Routes are keyed by path plus query string. Query strings are compared in
// canonical form, so "size=2&navn=Sesam" and "navn=Sesam&size=2" are the same
// route. A route registered without a query matches any query on that path
// that has no more specific route. Unknown routes answer 404.
type MockRegistry struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]http.HandlerFunc

	requestCount      int
	requests          []string
	lastRequestHeader http.Header
}

// NewMockRegistry starts a new mock registry server.
func NewMockRegistry() *MockRegistry {
	mock := &MockRegistry{
		handlers: make(map[string]http.HandlerFunc),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := routeKey(r.URL.Path, r.URL.RawQuery)

		mock.mu.Lock()
		mock.requestCount++
		mock.requests = append(mock.requests, key)
		mock.lastRequestHeader = r.Header.Clone()
		handler, exists := mock.handlers[key]
		if !exists {
			handler, exists = mock.handlers[r.URL.Path]
		}
		mock.mu.Unlock()

		if exists {
			handler(w, r)
			return
		}
		mock.notFound(w, r)
	}))

	return mock
}

// routeKey returns path and query in canonical form.
func routeKey(path, rawQuery string) string {
	if rawQuery == "" {
		return path
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return path + "?" + rawQuery
	}
	return path + "?" + values.Encode()
}

// URL returns the mock server URL. Use it as the client base URL.
func (m *MockRegistry) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockRegistry) Close() {
	m.server.Close()
}

// Reset clears all tracking counters. Routes are kept.
func (m *MockRegistry) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount = 0
	m.requests = nil
	m.lastRequestHeader = nil
}

// SetHandler sets a custom handler for a route such as "/enheter/112233445"
// or "/enheter?navn=Sesam&size=2".
func (m *MockRegistry) SetHandler(route string, handler http.HandlerFunc) {
	path, rawQuery, _ := strings.Cut(route, "?")

	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[routeKey(path, rawQuery)] = handler
}

// SetResponse configures a fixed response for a route.
func (m *MockRegistry) SetResponse(route string, resp MockResponse) {
	m.SetHandler(route, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}

		w.Header().Set("Content-Type", "application/json")
		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}

		w.WriteHeader(resp.StatusCode)
		if len(resp.Body) > 0 {
			w.Write(resp.Body)
		}
	})
}

// SetFixture answers route with the named fixture and status.
func (m *MockRegistry) SetFixture(route string, status int, fixture string) {
	m.SetResponse(route, MockResponse{StatusCode: status, Body: Fixture(fixture)})
}

// SetStatus answers route with an empty body and status.
func (m *MockRegistry) SetStatus(route string, status int) {
	m.SetResponse(route, MockResponse{StatusCode: status})
}

// RequestCount returns the number of requests made to the server.
func (m *MockRegistry) RequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requestCount
}

// Requests returns the canonical routes requested so far, in order.
func (m *MockRegistry) Requests() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.requests...)
}

// LastRequestHeader returns the headers of the most recent request.
func (m *MockRegistry) LastRequestHeader() http.Header {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastRequestHeader
}

// notFound mimics the registry's 404 body.
func (m *MockRegistry) notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprintf(w, `{"status":404,"error":"Not Found","path":%q}`, r.URL.Path)
}
