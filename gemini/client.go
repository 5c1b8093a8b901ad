// Package gemini talks to the Google Generative Language API. The API key
// stays server-side; clients only ever see the generated text.
package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

var ErrGenerateFailed = errors.New("failed to generate response")

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client is an interface for chat-completion calls.
type Client interface {
	Generate(ctx context.Context, prompt, contextText string) (string, error)
}

// HTTPClient implements Client against the real API.
type HTTPClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(apiKey, model string) *HTTPClient {
	if model == "" {
		model = "gemini-2.0-flash-exp"
	}
	return &HTTPClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *HTTPClient) Generate(ctx context.Context, prompt, contextText string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: no API key configured", ErrGenerateFailed)
	}

	full := prompt
	if contextText != "" {
		full = fmt.Sprintf("%s\n\nUser Query: %s", contextText, prompt)
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: full}}}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerateFailed, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerateFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerateFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrGenerateFailed, resp.StatusCode)
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerateFailed, err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrGenerateFailed)
	}

	return gr.Candidates[0].Content.Parts[0].Text, nil
}
