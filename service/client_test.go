package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"shootic-cli/model"
)

func newTestClient(server *httptest.Server) *Client {
	client := NewClient(server.Client())
	client.baseURL = server.URL
	client.retryBase = time.Millisecond
	client.retryCap = 2 * time.Millisecond
	return client
}

func TestGetJSON_Non2xxReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"boom"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	client.maxAttempts = 1

	var out map[string]any
	err := client.getJSON(context.Background(), server.URL+"/fail", &out)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetJSON_RetriesTransientServerErrors(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current := atomic.AddInt32(&attempts, 1)
		if current < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("retry later"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"ok":true}}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	var out map[string]any
	if err := client.getJSON(context.Background(), server.URL+"/retry", &out); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
	if ok, _ := out["ok"].(bool); !ok {
		t.Fatalf("unexpected payload: %+v", out)
	}
}

func TestGetJSON_DoesNotRetryOnClientErrors(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("bad request"))
	}))
	defer server.Close()

	client := newTestClient(server)

	var out map[string]any
	err := client.getJSON(context.Background(), server.URL+"/bad-request", &out)
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestPostJSON_NeverRetries(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("down"))
	}))
	defer server.Close()

	client := newTestClient(server)

	err := client.postJSON(context.Background(), server.URL+"/bookings", map[string]string{"a": "b"}, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Fatalf("expected a single attempt, got %d", attempts)
	}
}

func TestRoundTrip_NonSuccessEnvelopeIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"message":"slot already taken"}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	err := client.postJSON(context.Background(), server.URL+"/bookings", map[string]string{}, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "slot already taken") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRoundTrip_MalformedResponseIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":`))
	}))
	defer server.Close()

	client := newTestClient(server)

	var out map[string]any
	if err := client.getJSON(context.Background(), server.URL+"/broken", &out); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestRoundTrip_AttachesBearerAndRequestId(t *testing.T) {
	var auth, requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		requestID = r.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	client.SetTokenSource(func() string { return "token-123" })

	if err := client.getJSON(context.Background(), server.URL+"/ping", nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if auth != "Bearer token-123" {
		t.Fatalf("unexpected Authorization header: %q", auth)
	}
	if requestID == "" {
		t.Fatal("expected a request id header")
	}
}

func TestIsUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"token expired"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	client.maxAttempts = 1

	var summary model.DashboardSummary
	err := client.getJSON(context.Background(), server.URL+"/admin/dashboard", &summary)
	if !IsUnauthorized(err) {
		t.Fatalf("expected IsUnauthorized, got %v", err)
	}
}
