// Package testutil provides testing utilities for the MyAnimeList client.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// MockResponse defines the behavior for a mock API endpoint response.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// MockMAL is a configurable mock MyAnimeList API server for testing.
type MockMAL struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	RequestCount      int
	LastRequestHeader http.Header
	LastQuery         map[string]string
}

// NewMockMAL creates a new mock API server.
func NewMockMAL() *MockMAL {
	mock := &MockMAL{
		handlers: make(map[string]func(w http.ResponseWriter, r *http.Request)),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.LastRequestHeader = r.Header.Clone()
		mock.LastQuery = make(map[string]string)
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				mock.LastQuery[key] = values[0]
			}
		}
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		mock.defaultHandler(w, r)
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockMAL) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockMAL) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockMAL) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.LastRequestHeader = nil
	m.LastQuery = nil
}

// Requests returns the number of requests served so far.
func (m *MockMAL) Requests() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// SetHandler sets a custom handler for a specific path.
func (m *MockMAL) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a simple response for a path.
func (m *MockMAL) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}

		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json")
		}

		statusCode := resp.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusOK
		}
		w.WriteHeader(statusCode)
		fmt.Fprint(w, resp.Body)
	})
}

// SetSearchPage configures path to return a single-entry search page with
// the given paging links.
func (m *MockMAL) SetSearchPage(path string, id int, title, prev, next string) {
	body := fmt.Sprintf(`{
		"data": [{"node": {"id": %d, "title": %q}}],
		"paging": {"previous": %q, "next": %q}
	}`, id, title, prev, next)
	m.SetResponse(path, MockResponse{Body: body})
}

// SetError configures path to return an API error body.
func (m *MockMAL) SetError(path string, statusCode int, message, reason string) {
	body := fmt.Sprintf(`{"message": %q, "error": %q}`, message, reason)
	m.SetResponse(path, MockResponse{StatusCode: statusCode, Body: body})
}

// defaultHandler answers unconfigured paths with an empty page.
func (m *MockMAL) defaultHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"data": [], "paging": {}}`)
}
