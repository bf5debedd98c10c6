package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client wraps interactions with the external text-generation API
// (Gemini-style generateContent endpoint).
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

// NewClient constructs a new client. The API key is supplied externally;
// the client never logs it.
func NewClient(baseURL, model, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
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

// Generate submits the prompt and returns the generated text. A non-2xx
// status, an unreadable body, or an empty candidate list are all errors;
// the caller decides how to degrade.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("insights: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("insights: generation failed with status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("insights: read response: %w", err)
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("insights: decode response: %w", err)
	}
	if len(decoded.Candidates) == 0 {
		return "", fmt.Errorf("insights: response contained no candidates")
	}
	var b strings.Builder
	for _, p := range decoded.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("insights: response contained no text")
	}
	return b.String(), nil
}
