// Package practice implements the terminal client that runs a mock
// interview against the HTTP API.
package practice

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/openkcm/interview-manager/internal/openapi"
)

// APIError is a non 2xx answer of the interview API.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("%s (%d)", e.Code, e.StatusCode)
	}
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Description)
}

// Client calls the interview HTTP API through the generated client.
type Client struct {
	api *openapi.ClientWithResponses
}

type ClientOption = openapi.ClientOption

func WithHTTPClient(c *http.Client) ClientOption {
	return openapi.WithHTTPClient(c)
}

func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url %q must use http or https", baseURL)
	}

	opts = append([]ClientOption{openapi.WithHTTPClient(&http.Client{Timeout: 2 * time.Minute})}, opts...)
	api, err := openapi.NewClientWithResponses(u.String(), opts...)
	if err != nil {
		return nil, fmt.Errorf("creating api client: %w", err)
	}

	return &Client{api: api}, nil
}

func (c *Client) Start(ctx context.Context, req openapi.StartRequest) (openapi.StartResult, error) {
	resp, err := c.api.StartWithResponse(ctx, req)
	if err != nil {
		return openapi.StartResult{}, fmt.Errorf("calling /start: %w", err)
	}
	return result(resp.StatusCode(), resp.JSON200, resp.JSONDefault)
}

func (c *Client) Answer(ctx context.Context, sessionID, text string) (openapi.AnswerResult, error) {
	resp, err := c.api.AnswerWithResponse(ctx, openapi.AnswerRequest{SessionId: sessionID, Text: &text})
	if err != nil {
		return openapi.AnswerResult{}, fmt.Errorf("calling /answer: %w", err)
	}
	return result(resp.StatusCode(), resp.JSON200, resp.JSONDefault)
}

func (c *Client) Status(ctx context.Context, sessionID string) (openapi.StatusResult, error) {
	resp, err := c.api.StatusWithResponse(ctx, &openapi.StatusParams{SessionId: sessionID})
	if err != nil {
		return openapi.StatusResult{}, fmt.Errorf("calling /status: %w", err)
	}
	return result(resp.StatusCode(), resp.JSON200, resp.JSONDefault)
}

func (c *Client) Summary(ctx context.Context, sessionID string) (openapi.SummaryResult, error) {
	resp, err := c.api.SummaryWithResponse(ctx, &openapi.SummaryParams{SessionId: sessionID})
	if err != nil {
		return openapi.SummaryResult{}, fmt.Errorf("calling /summary: %w", err)
	}
	return result(resp.StatusCode(), resp.JSON200, resp.JSONDefault)
}

func (c *Client) Reset(ctx context.Context, sessionID string) error {
	resp, err := c.api.ResetWithResponse(ctx, nil, openapi.ResetRequest{SessionId: &sessionID})
	if err != nil {
		return fmt.Errorf("calling /reset: %w", err)
	}
	_, err = result(resp.StatusCode(), resp.JSON200, resp.JSONDefault)
	return err
}

// result returns the decoded 200 body, or an APIError built from the error
// model when the server answered anything else.
func result[T any](statusCode int, ok *T, failure *openapi.ErrorModel) (T, error) {
	if statusCode == http.StatusOK && ok != nil {
		return *ok, nil
	}

	var zero T
	apiErr := &APIError{StatusCode: statusCode, Code: http.StatusText(statusCode)}
	if failure != nil {
		if failure.Error != "" {
			apiErr.Code = failure.Error
		}
		if failure.ErrorDescription != nil {
			apiErr.Description = *failure.ErrorDescription
		}
	}

	return zero, apiErr
}
