package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atinyakov/useful-links/internal/middleware"
)

func TestWithSubnet(t *testing.T) {
	tests := []struct {
		name           string
		subnet         string
		realIP         string
		expectedStatus int
	}{
		{"allowed subnet", "192.168.0.0/24", "192.168.0.45", http.StatusOK},
		{"forbidden subnet", "10.0.0.0/24", "192.168.0.1", http.StatusForbidden},
		{"single host", "203.0.113.5/32", "203.0.113.5", http.StatusOK},
		{"missing header", "192.168.1.0/24", "", http.StatusForbidden},
		{"no subnet configured", "", "192.168.1.1", http.StatusForbidden},
		{"broken subnet", "192.168.1", "192.168.1.1", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/internal/stats", nil)
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}

			rr := httptest.NewRecorder()
			middleware.WithSubnet(tt.subnet)(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
			if called != (tt.expectedStatus == http.StatusOK) {
				t.Errorf("handler called = %v for status %d", called, rr.Code)
			}
		})
	}
}
