package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openkcm/common-sdk/pkg/commoncfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/openkcm/interview-manager/internal/openapi"
)

func TestInitMeters(t *testing.T) {
	err := initMeters(t.Context(), testConfig(""))
	assert.NoError(t, err)
}

func TestNewTraceMiddleware(t *testing.T) {
	cfg := testConfig("")
	cfg.Application.Environment = "test"
	require.NoError(t, initMeters(t.Context(), cfg))

	middleware := newTraceMiddleware(cfg)

	tests := []struct {
		name      string
		handler   func(ctx context.Context, w http.ResponseWriter, r *http.Request, request any) (any, error)
		header    map[string]string
		wantResp  any
		assertErr assert.ErrorAssertionFunc
	}{
		{
			name: "Passes the request through",
			handler: func(_ context.Context, _ http.ResponseWriter, _ *http.Request, request any) (any, error) {
				return request, nil
			},
			wantResp:  openapi.StartRequestObject{Body: &openapi.StartRequest{SessionId: "s1"}},
			assertErr: assert.NoError,
		},
		{
			name: "Propagates handler errors",
			handler: func(context.Context, http.ResponseWriter, *http.Request, any) (any, error) {
				return nil, errors.New("handler error")
			},
			assertErr: assert.Error,
		},
		{
			name: "Extracts the parent trace",
			handler: func(context.Context, http.ResponseWriter, *http.Request, any) (any, error) {
				return "ok", nil
			},
			header:    map[string]string{"Traceparent": "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"},
			wantResp:  "ok",
			assertErr: assert.NoError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := middleware(tt.handler, "Start")

			req := httptest.NewRequest(http.MethodPost, "/start", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}

			var request any = openapi.StartRequestObject{Body: &openapi.StartRequest{SessionId: "s1"}}
			resp, err := wrapped(t.Context(), httptest.NewRecorder(), req, request)
			tt.assertErr(t, err)
			assert.Equal(t, tt.wantResp, resp)
		})
	}
}

func TestNewTraceMiddleware_RecordsOperation(t *testing.T) {
	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	previous := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	t.Cleanup(func() { otel.SetMeterProvider(previous) })

	cfg := testConfig("")
	require.NoError(t, initMeters(t.Context(), cfg))

	handler := func(context.Context, http.ResponseWriter, *http.Request, any) (any, error) {
		return "ok", nil
	}
	wrapped := newTraceMiddleware(cfg)(handler, "Answer")
	for range 2 {
		_, err := wrapped(t.Context(), httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/answer", nil), nil)
		require.NoError(t, err)
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(t.Context(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.request_count" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				op, found := dp.Attributes.Value(attribute.Key(commoncfg.AttrOperation))
				require.True(t, found)
				assert.Equal(t, "Answer", op.AsString())
				total += dp.Value
			}
		}
	}
	assert.Equal(t, int64(2), total)
}
