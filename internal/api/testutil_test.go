package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/joestump/stack-underflow/internal/api"
	"github.com/joestump/stack-underflow/internal/logging"
	"github.com/joestump/stack-underflow/internal/store"
)

// testEnv holds the router and the store behind it.
type testEnv struct {
	Router http.Handler
	Store  *store.Store
}

// newTestEnv opens a store seeded from the embedded dataset, with
// predictable ids, and wires the full router around it.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithSeed(t, nil)
}

// newTestEnvWithSeed is newTestEnv over a custom seed dataset. A nil seed
// uses the embedded one.
func newTestEnvWithSeed(t *testing.T, seed []byte) *testEnv {
	t.Helper()

	var mu sync.Mutex
	n := 0
	gen := func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("gen-%03d", n)
	}

	var s *store.Store
	var err error
	if seed == nil {
		s, err = store.OpenDefault(store.WithIDGenerator(gen))
	} else {
		s, err = store.Open(seed, store.WithIDGenerator(gen))
	}
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	router := api.NewRouter(api.Deps{Store: s, Logger: logging.Nop()})
	return &testEnv{Router: router, Store: s}
}

// do sends a request through the router. A non-empty body is sent as JSON.
func (env *testEnv) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the recorded body into v.
func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode: %v; body: %s", err, rec.Body.String())
	}
}

// wantError checks status and the single-field error body.
func wantError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, status, rec.Body.String())
	}
	var body map[string]string
	decode(t, rec, &body)
	if body["error"] != message {
		t.Errorf("error = %q, want %q", body["error"], message)
	}
	if len(body) != 1 {
		t.Errorf("error body has %d fields, want 1: %v", len(body), body)
	}
}
