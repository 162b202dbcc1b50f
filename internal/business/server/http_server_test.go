package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/openkcm/common-sdk/pkg/commoncfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkcm/interview-manager/internal/config"
)

func testConfig(address string) *config.Config {
	return &config.Config{
		BaseConfig: commoncfg.BaseConfig{
			Application: commoncfg.Application{
				Name: "test-app",
			},
		},
		HTTP: config.HTTPServer{
			Address:         address,
			ShutdownTimeout: time.Second,
			MaxAudioBytes:   1024,
		},
	}
}

func TestStartHTTPServer_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())

	errChan := make(chan error, 1)
	go func() {
		errChan <- StartHTTPServer(ctx, testConfig("localhost:0"), newStubInterviews())
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Server did not shut down within timeout")
	}
}

func TestStartHTTPServer_UnixSocket(t *testing.T) {
	socket := filepath.Join(t.TempDir(), "api.sock")
	ctx, cancel := context.WithCancel(t.Context())

	errChan := make(chan error, 1)
	go func() {
		errChan <- StartHTTPServer(ctx, testConfig("unix://"+socket), newStubInterviews())
	}()

	client := unixClient(socket)
	require.Eventually(t, func() bool {
		req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, "http://unix/status?session_id=s1", nil)
		if err != nil {
			return false
		}
		resp, err := client.Do(req)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-errChan)
}

func TestCreateHTTPServer(t *testing.T) {
	t.Run("creates HTTP server with default config", func(t *testing.T) {
		server := createHTTPServer(t.Context(), testConfig("localhost:8080"), newStubInterviews())

		assert.Equal(t, "localhost:8080", server.Addr)
		assert.NotNil(t, server.Handler)
	})

	t.Run("applies CORS when origins are configured", func(t *testing.T) {
		cfg := testConfig("localhost:8080")
		cfg.HTTP.AllowedOrigins = []string{"http://localhost:3000"}
		cfg.HTTP.CORSMaxAge = time.Minute
		server := createHTTPServer(t.Context(), cfg, newStubInterviews())

		req := httptest.NewRequest(http.MethodOptions, "/start", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "content-type")
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "content-type", rec.Header().Get("Access-Control-Allow-Headers"))
		assert.Equal(t, "60", rec.Header().Get("Access-Control-Max-Age"))
	})
}
