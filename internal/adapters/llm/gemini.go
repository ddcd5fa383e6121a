package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"futureyou/internal/domain"
)

// GeminiClient implements domain.TextGenerator on top of the Gemini API.
// Safe for reuse across sequential calls from one agent instance.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates the client from an API key. Fails fast so agent
// construction can propagate the error.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiClient{client: client}, nil
}

// GenerateText implements domain.TextGenerator. Empty model text is
// returned as-is; the calling agent decides what empty means.
func (c *GeminiClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	temp := float32(0.7)
	topP := float32(0.9)

	cfg := &genai.GenerateContentConfig{
		Temperature:     &temp,
		TopP:            &topP,
		MaxOutputTokens: int32(8192),
	}

	res, err := c.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	return res.Text(), nil
}

var _ domain.TextGenerator = (*GeminiClient)(nil)
