// Package suggest wraps the external AI photo-suggestion service. It takes a
// quote and returns a suggested image description for it. Failures surface
// as plain errors to the caller; no retries.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"framerly/internal/errors"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type suggestRequest struct {
	Quote string `json:"quote"`
}

type suggestResponse struct {
	Description string `json:"description"`
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SuggestPhoto asks the upstream service for an image description matching
// the quote.
func (c *Client) SuggestPhoto(ctx context.Context, quote string) (string, error) {
	if quote == "" {
		return "", errors.NewInvalidArgumentError("quote cannot be empty")
	}
	if c.baseURL == "" {
		return "", fmt.Errorf("suggestion service not configured")
	}

	payload, err := json.Marshal(suggestRequest{Quote: quote})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	url := strings.TrimSuffix(c.baseURL, "/") + "/suggest-photo"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling suggestion service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("suggestion service returned status %d", resp.StatusCode)
	}

	var result suggestResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if result.Description == "" {
		return "", fmt.Errorf("suggestion service returned an empty description")
	}

	return result.Description, nil
}
