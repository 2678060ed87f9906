// Package openai is a client for the OpenAI Chat Completions and Models APIs.
package openai

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nailen1/use-ai/pkg/modeladapter"
)

const (
	completionsPath = "/v1/chat/completions"
	modelsPath      = "/v1/models"
)

// Client talks to an OpenAI-compatible API.
type Client struct {
	modeladapter.ModelAdapter
}

// New creates a Client. The baseURL should be "https://api.openai.com" (no
// trailing slash). A nil httpClient uses a default with a 10-minute timeout.
// No network I/O happens here.
func New(baseURL, apiKey string, httpClient *http.Client) *Client {
	c := &Client{}
	c.BaseURL = baseURL
	c.Auth = modeladapter.Auth{Key: apiKey}
	c.Client = httpClient
	c.HeaderParser = modeladapter.ParseOpenAIRateLimitHeaders

	return c
}

// CreateChatCompletion submits req as-is. Non-2xx replies surface as
// *modeladapter.APIError or *modeladapter.RateLimitError.
func (c *Client) CreateChatCompletion(ctx context.Context, req Request) (Response, error) {
	var resp Response
	if err := c.PostJSON(ctx, completionsPath, req, &resp); err != nil {
		return Response{}, fmt.Errorf("openai: %w", err)
	}

	return resp, nil
}

// ListModels returns the model ids visible to the credential, in the order
// the service lists them.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	var resp modelsResponse
	if err := c.GetJSON(ctx, modelsPath, &resp); err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}

	ids := make([]string, 0, len(resp.Data))
	for _, m := range resp.Data {
		ids = append(ids, m.ID)
	}

	return ids, nil
}

type modelsResponse struct {
	Data []modelEntry `json:"data"`
}

type modelEntry struct {
	ID      string `json:"id"`
	OwnedBy string `json:"owned_by"`
}
