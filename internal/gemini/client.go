// Package gemini wraps the generateContent REST endpoint. One call in, one
// candidate text out; retry and fallback policy live in the orchestrator.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1"
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 120 * time.Second

	// Fixed sampling parameters carried on every request.
	topP            = 0.9
	maxOutputTokens = 4096
)

// Config holds the immutable per-client settings. BaseURL and Timeout exist
// for tests; production callers leave them zero.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client issues single synchronous generateContent calls.
type Client struct {
	http  *resty.Client
	model string
}

// New fails fast when the credential is absent; nothing else is validated
// until the first call.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetQueryParam("key", cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &Client{http: http, model: model}, nil
}

// Model returns the model identifier this client targets.
func (c *Client) Model() string {
	return c.model
}

type request struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type response struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

// Generate sends one prompt and returns the trimmed candidate text.
func (c *Client) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	body := request{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     temperature,
			TopP:            topP,
			MaxOutputTokens: maxOutputTokens,
		},
	}

	var result response
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(fmt.Sprintf("/models/%s:generateContent", c.model))
	if err != nil {
		return "", fmt.Errorf("call gemini: %w", err)
	}
	if !resp.IsSuccess() {
		return "", &StatusError{Code: resp.StatusCode(), Body: string(resp.Body())}
	}
	return extractText(result, resp.Body())
}

// extractText walks the fixed structural path to the candidate text and
// classifies every way the path can be missing.
func extractText(result response, raw []byte) (string, error) {
	if len(result.Candidates) == 0 {
		return "", &ResponseError{Reason: "no candidates", Payload: string(raw)}
	}
	cand := result.Candidates[0]
	if cand.FinishReason == "MAX_TOKENS" {
		return "", fmt.Errorf("%w (finishReason=MAX_TOKENS)", ErrTruncated)
	}
	if cand.FinishReason != "" && cand.FinishReason != "STOP" {
		return "", &ResponseError{
			Reason:  fmt.Sprintf("generation stopped with finishReason=%s", cand.FinishReason),
			Payload: string(raw),
		}
	}
	if len(cand.Content.Parts) == 0 {
		return "", &ResponseError{Reason: "candidate has no text parts", Payload: string(raw)}
	}
	text := strings.TrimSpace(cand.Content.Parts[0].Text)
	if text == "" {
		return "", &ResponseError{Reason: "candidate text is empty", Payload: string(raw)}
	}
	return text, nil
}
