package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	apiURL string
	apiKey string
	client *http.Client
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	URL string `json:"url"`
}

func NewClient(apiURL, apiKey string) (*Client, error) {
	if apiURL == "" {
		return nil, fmt.Errorf("image API URL is required")
	}

	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Generate asks the image service for a picture matching prompt and
// returns the URL of the hosted result. One attempt, no retries.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	jsonData, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("error marshaling request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.apiURL+"/v1/images", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error calling image API: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("image API error: %s", string(respBody))
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("error decoding response: %v", err)
	}

	if result.URL == "" {
		return "", fmt.Errorf("image API returned an empty URL")
	}

	return result.URL, nil
}
