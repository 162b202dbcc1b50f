package practice_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkcm/interview-manager/internal/openapi"
	"github.com/openkcm/interview-manager/internal/practice"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr assert.ErrorAssertionFunc
	}{
		{name: "http", baseURL: "http://localhost:8080", wantErr: assert.NoError},
		{name: "https with trailing slash", baseURL: "https://interviews.example.com/", wantErr: assert.NoError},
		{name: "missing scheme", baseURL: "localhost:8080", wantErr: assert.Error},
		{name: "unsupported scheme", baseURL: "unix:///tmp/api.sock", wantErr: assert.Error},
		{name: "unparsable", baseURL: "http://[::1", wantErr: assert.Error},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := practice.NewClient(tc.baseURL)
			tc.wantErr(t, err)
		})
	}
}

// fakeServer answers the operations the practice client uses through the
// generated strict handler.
type fakeServer struct {
	openapi.StrictServerInterface

	resetID string
}

func (f *fakeServer) Start(_ context.Context, req openapi.StartRequestObject) (openapi.StartResponseObject, error) {
	if req.Body.SessionId != "s1" || req.Body.Rounds == nil || *req.Body.Rounds != 2 {
		return openapi.StartdefaultJSONResponse{Body: openapi.ErrorModel{Error: "invalid_request"}, StatusCode: http.StatusBadRequest}, nil
	}
	return openapi.Start200JSONResponse{Question: "Tell me about yourself.", Round: 1}, nil
}

func (f *fakeServer) Answer(_ context.Context, req openapi.AnswerRequestObject) (openapi.AnswerResponseObject, error) {
	return openapi.Answer200JSONResponse{
		Evaluation: "eval of " + *req.Body.Text,
		Feedback:   "fb",
		Question:   new("next"),
		Round:      new(2),
	}, nil
}

func (f *fakeServer) Status(_ context.Context, req openapi.StatusRequestObject) (openapi.StatusResponseObject, error) {
	return openapi.Status200JSONResponse{CurrentQuestion: req.Params.SessionId, Round: 1, MaxRounds: 2}, nil
}

func (f *fakeServer) Summary(context.Context, openapi.SummaryRequestObject) (openapi.SummaryResponseObject, error) {
	return openapi.Summary200JSONResponse{Summary: "well done"}, nil
}

func (f *fakeServer) Reset(_ context.Context, req openapi.ResetRequestObject) (openapi.ResetResponseObject, error) {
	f.resetID = *req.Body.SessionId
	return openapi.Reset200JSONResponse{Ok: true}, nil
}

func TestClient_Operations(t *testing.T) {
	fake := &fakeServer{}
	srv := httptest.NewServer(openapi.Handler(openapi.NewStrictHandler(fake, nil)))
	defer srv.Close()

	client, err := practice.NewClient(srv.URL, practice.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	ctx := t.Context()

	started, err := client.Start(ctx, openapi.StartRequest{SessionId: "s1", Rounds: new(2)})
	require.NoError(t, err)
	assert.Equal(t, openapi.StartResult{Question: "Tell me about yourself.", Round: 1}, started)

	_, err = client.Start(ctx, openapi.StartRequest{SessionId: "other"})
	var apiErr *practice.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid_request", apiErr.Code)

	answered, err := client.Answer(ctx, "s1", "I build services")
	require.NoError(t, err)
	assert.Equal(t, "eval of I build services", answered.Evaluation)
	assert.Equal(t, new(2), answered.Round)

	status, err := client.Status(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", status.CurrentQuestion)
	assert.Equal(t, 2, status.MaxRounds)

	summary, err := client.Summary(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "well done", summary.Summary)

	require.NoError(t, client.Reset(ctx, "s1"))
	assert.Equal(t, "s1", fake.resetID)
}

func TestClient_APIError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantErr     *practice.APIError
	}{
		{
			name:        "error model with description",
			status:      http.StatusConflict,
			contentType: "application/json",
			body:        `{"error":"invalid_phase","error_description":"interview already finished"}`,
			wantErr:     &practice.APIError{StatusCode: http.StatusConflict, Code: "invalid_phase", Description: "interview already finished"},
		},
		{
			name:        "error model without description",
			status:      http.StatusNotFound,
			contentType: "application/json",
			body:        `{"error":"not_found"}`,
			wantErr:     &practice.APIError{StatusCode: http.StatusNotFound, Code: "not_found"},
		},
		{
			name:        "plain text body",
			status:      http.StatusBadGateway,
			contentType: "text/plain",
			body:        "upstream down",
			wantErr:     &practice.APIError{StatusCode: http.StatusBadGateway, Code: "Bad Gateway"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", tc.contentType)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client, err := practice.NewClient(srv.URL)
			require.NoError(t, err)

			_, err = client.Summary(t.Context(), "s1")

			var apiErr *practice.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.wantErr, apiErr)
		})
	}
}
