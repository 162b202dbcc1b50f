package cors_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openkcm/interview-manager/internal/middleware/cors"
)

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		allowed        []string
		method         string
		origin         string
		header         map[string]string
		wantStatus     int
		wantHeaders    map[string]string
		wantNextCalled bool
	}{
		{
			name:           "Disabled",
			method:         http.MethodPost,
			origin:         "https://practice.example.com",
			wantStatus:     http.StatusOK,
			wantHeaders:    map[string]string{"Access-Control-Allow-Origin": ""},
			wantNextCalled: true,
		},
		{
			name:           "Same origin request",
			allowed:        []string{"https://practice.example.com"},
			method:         http.MethodGet,
			wantStatus:     http.StatusOK,
			wantHeaders:    map[string]string{"Access-Control-Allow-Origin": ""},
			wantNextCalled: true,
		},
		{
			name:           "Allowed origin",
			allowed:        []string{"https://practice.example.com"},
			method:         http.MethodPost,
			origin:         "https://practice.example.com",
			wantStatus:     http.StatusOK,
			wantHeaders:    map[string]string{"Access-Control-Allow-Origin": "https://practice.example.com"},
			wantNextCalled: true,
		},
		{
			name:           "Wildcard",
			allowed:        []string{"*"},
			method:         http.MethodPost,
			origin:         "http://localhost:3000",
			wantStatus:     http.StatusOK,
			wantHeaders:    map[string]string{"Access-Control-Allow-Origin": "*"},
			wantNextCalled: true,
		},
		{
			name:           "Unknown origin is passed through without headers",
			allowed:        []string{"https://practice.example.com"},
			method:         http.MethodPost,
			origin:         "https://evil.example.com",
			wantStatus:     http.StatusOK,
			wantHeaders:    map[string]string{"Access-Control-Allow-Origin": ""},
			wantNextCalled: true,
		},
		{
			name:    "Preflight echoes the requested headers",
			allowed: []string{"https://practice.example.com"},
			method:  http.MethodOptions,
			origin:  "https://practice.example.com",
			header: map[string]string{
				"Access-Control-Request-Method":  http.MethodPost,
				"Access-Control-Request-Headers": "content-type,traceparent",
			},
			wantStatus: http.StatusNoContent,
			wantHeaders: map[string]string{
				"Access-Control-Allow-Origin":  "https://practice.example.com",
				"Access-Control-Allow-Methods": http.MethodPost,
				"Access-Control-Allow-Headers": "content-type,traceparent",
				"Access-Control-Max-Age":       "600",
			},
		},
		{
			name:    "Preflight from unknown origin gets no CORS headers",
			allowed: []string{"https://practice.example.com"},
			method:  http.MethodOptions,
			origin:  "https://evil.example.com",
			header: map[string]string{
				"Access-Control-Request-Method": http.MethodPost,
			},
			wantStatus:  http.StatusNoContent,
			wantHeaders: map[string]string{"Access-Control-Allow-Origin": ""},
		},
		{
			name:    "Preflight for a disallowed method",
			allowed: []string{"https://practice.example.com"},
			method:  http.MethodOptions,
			origin:  "https://practice.example.com",
			header: map[string]string{
				"Access-Control-Request-Method": http.MethodDelete,
			},
			wantStatus:  http.StatusNoContent,
			wantHeaders: map[string]string{"Access-Control-Allow-Methods": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/start", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			cors.Middleware(tt.allowed, 10*time.Minute, next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			for k, v := range tt.wantHeaders {
				assert.Equal(t, v, rec.Header().Get(k), k)
			}
		})
	}
}
