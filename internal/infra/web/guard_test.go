package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mnogo-rolly-bot/internal/infra/web"
)

func TestRecoverAnswersWithStructuredJSON(t *testing.T) {
	// --- Arrange ---
	boom := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := web.Chain(boom, web.TraceID(), web.Recover(newTestLogger()))

	// --- Act ---
	req := httptest.NewRequest(http.MethodPost, "/telegram-webhook/new-order", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// --- Assert ---
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("want application/json, got %q", ct)
	}
	status, message := decodeAck(t, rec.Body)
	if status != "error" || message == "" {
		t.Errorf("expected structured error body, got status=%q message=%q", status, message)
	}
}
