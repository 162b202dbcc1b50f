package llm

import (
	"context"
	"net/http"

	"google.golang.org/genai"
)

// NewClientForServer points a Gemini API client at baseURL.
func NewClientForServer(ctx context.Context, baseURL string, httpClient *http.Client) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:     genai.BackendGeminiAPI,
		APIKey:      "test-key",
		HTTPClient:  httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, err
	}

	return &Client{client: client, modelName: "gemini-test"}, nil
}
