package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiChatClient is the alternate provider for deployments without an
// OpenRouter key.
type GeminiChatClient struct {
	client *genai.Client
	model  string
}

func NewGeminiChatClient(cfg ChatConfig) (*GeminiChatClient, error) {
	model := cfg.Model
	if model == "" {
		model = DefaultGeminiMdl
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiChatClient{client: client, model: model}, nil
}

func (c *GeminiChatClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(ChatTemperature)
	m.SetMaxOutputTokens(ChatMaxTokens)
	if systemPrompt != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyModelResponse
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiChatClient) Ping(ctx context.Context) bool {
	m := c.client.GenerativeModel(c.model)
	m.SetMaxOutputTokens(1)
	resp, err := m.GenerateContent(ctx, genai.Text("ping"))
	return err == nil && len(resp.Candidates) > 0
}

func (c *GeminiChatClient) Close() error {
	return c.client.Close()
}
