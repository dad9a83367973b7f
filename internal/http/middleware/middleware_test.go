package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"olympiades-service/internal/testutil"
)

func TestLoggingEchoesValidRequestID(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	handler := Logging(logger, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got != "req-123" {
			t.Fatalf("context request id = %q, want req-123", got)
		}
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "req-123" {
		t.Fatalf("response request id = %q, want req-123", got)
	}
	if !strings.Contains(buf.String(), "request complete") {
		t.Fatalf("log output missing completion entry: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "status_code=418") {
		t.Fatalf("log output missing captured status: %s", buf.String())
	}
}

func TestLoggingReplacesMalformedRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	handler := Logging(logger, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "bad id with spaces!")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	got := rec.Header().Get("X-Request-ID")
	if got == "" || got == "bad id with spaces!" {
		t.Fatalf("request id %q not regenerated", got)
	}
}

func TestRequestIDFromContextMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := RequestIDFromContext(req.Context()); got != "" {
		t.Fatalf("request id = %q, want empty", got)
	}
}
