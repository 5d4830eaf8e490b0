// Package testutil provides testing utilities for the administration API SDK.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// MockServer provides a mock HTTP server for testing SDK clients.
type MockServer struct {
	*httptest.Server
	t        *testing.T
	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	calls    []string
}

// NewMockServer creates a new mock server for testing.
func NewMockServer(t *testing.T) *MockServer {
	ms := &MockServer{
		t:        t,
		handlers: make(map[string]http.HandlerFunc),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", ms.handleRequest)

	ms.Server = httptest.NewServer(mux)
	return ms
}

// On registers a handler for a specific method and path.
func (ms *MockServer) On(method, path string, handler http.HandlerFunc) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.handlers[method+" "+path] = handler
}

// OnJSON registers a handler that returns JSON for a specific method and path.
func (ms *MockServer) OnJSON(method, path string, statusCode int, response interface{}) {
	ms.On(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		if response != nil {
			if err := json.NewEncoder(w).Encode(response); err != nil {
				ms.t.Errorf("failed to encode response: %v", err)
			}
		}
	})
}

// OnText registers a handler that returns a plain text body.
func (ms *MockServer) OnText(method, path string, statusCode int, body string) {
	ms.On(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(body))
	})
}

// OnStatus registers a handler that answers with an empty body.
func (ms *MockServer) OnStatus(method, path string, statusCode int) {
	ms.On(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
	})
}

// Calls returns every "METHOD /path" the server received, in order.
func (ms *MockServer) Calls() []string {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([]string(nil), ms.calls...)
}

// handleRequest routes requests to registered handlers.
func (ms *MockServer) handleRequest(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path

	ms.mu.Lock()
	ms.calls = append(ms.calls, key)
	handler, ok := ms.handlers[key]
	ms.mu.Unlock()

	if !ok {
		ms.t.Logf("no handler registered for %s", key)
		http.NotFound(w, r)
		return
	}
	handler(w, r)
}

// Close closes the mock server.
func (ms *MockServer) Close() {
	ms.Server.Close()
}

// AssertHeader asserts that a request header has the expected value.
func AssertHeader(t *testing.T, r *http.Request, key, expected string) {
	t.Helper()
	actual := r.Header.Get(key)
	if actual != expected {
		t.Errorf("expected header %s=%q, got %q", key, expected, actual)
	}
}

// AssertMethod asserts that the request method matches expected.
func AssertMethod(t *testing.T, r *http.Request, expected string) {
	t.Helper()
	if r.Method != expected {
		t.Errorf("expected method %s, got %s", expected, r.Method)
	}
}

// AssertJSONBody decodes the request body and compares it to expected.
func AssertJSONBody(t *testing.T, r *http.Request, expected interface{}) {
	t.Helper()
	var actual interface{}
	if err := json.NewDecoder(r.Body).Decode(&actual); err != nil {
		t.Fatalf("failed to decode request body: %v", err)
	}

	expectedJSON, _ := json.Marshal(expected)
	actualJSON, _ := json.Marshal(actual)

	if string(expectedJSON) != string(actualJSON) {
		t.Errorf("expected body %s, got %s", string(expectedJSON), string(actualJSON))
	}
}

// AssertFormBody parses a form-encoded body and checks it holds exactly the
// expected fields.
func AssertFormBody(t *testing.T, r *http.Request, expected map[string]string) {
	t.Helper()
	if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
		t.Errorf("expected form content type, got %q", ct)
	}
	if err := r.ParseForm(); err != nil {
		t.Fatalf("failed to parse form: %v", err)
	}

	if len(r.PostForm) != len(expected) {
		t.Errorf("expected %d form fields, got %d (%v)", len(expected), len(r.PostForm), r.PostForm)
	}
	for key, want := range expected {
		if got := r.PostForm.Get(key); got != want {
			t.Errorf("expected form field %s=%q, got %q", key, want, got)
		}
	}
}

// JSONResponse writes a JSON response to the response writer.
func JSONResponse(t *testing.T, w http.ResponseWriter, data interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		t.Errorf("failed to encode JSON response: %v", err)
	}
}
