package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"screener-backend/internal/llm"
)

const defaultModel = "gemini-2.0-flash"

// Deterministic-leaning sampling, matching the OpenAI provider.
const temperature float32 = 0.2

// Client implements llm.Client over the Gemini API backend.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a Gemini-backed client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("GEMINI_API_KEY is required")
	}
	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// Complete sends the messages and returns the concatenated response text.
// System messages become the system instruction; the rest join the user turn.
func (c *Client) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	if c == nil || c.client == nil {
		return "", &llm.UpstreamError{Message: "gemini client is not initialized"}
	}

	var system, user strings.Builder
	for _, m := range messages {
		content := strings.TrimSpace(m.Content)
		if content == "" {
			continue
		}
		target := &user
		if m.Role == llm.RoleSystem {
			target = &system
		}
		if target.Len() > 0 {
			target.WriteString("\n\n")
		}
		target.WriteString(content)
	}
	if user.Len() == 0 {
		return "", &llm.UpstreamError{Message: "gemini prompt must not be empty"}
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(temperature),
		ResponseMIMEType: "application/json",
	}
	if system.Len() > 0 {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system.String()}},
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(user.String()), cfg)
	if err != nil {
		return "", upstreamError(err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", &llm.UpstreamError{Message: "gemini api returned empty response"}
	}
	return output, nil
}

// upstreamError maps a genai failure to llm.UpstreamError, carrying the
// provider's HTTP status when the API reported one.
func upstreamError(err error) *llm.UpstreamError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &llm.UpstreamError{StatusCode: apiErr.Code, Message: apiErr.Message}
	}
	return &llm.UpstreamError{Message: fmt.Sprintf("generate content: %v", err)}
}

var _ llm.Client = (*Client)(nil)
