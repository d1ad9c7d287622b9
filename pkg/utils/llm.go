package utils

import (
	"context"
	"strings"
)

// Fixed generation settings. These are deliberately not configurable at
// runtime; callers only vary the prompts.
const (
	ChatTemperature  = 0.8
	ChatMaxTokens    = 1000
	DefaultORModel   = "qwen/qwen3-coder:free"
	DefaultGeminiMdl = "gemini-1.5-flash"
)

// ChatClient is the single seam between the orchestration layer and a
// generative model. An empty systemPrompt means the request carries no system
// message at all, not an empty one.
type ChatClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Ping(ctx context.Context) bool
}

// ChatConfig holds provider selection plus per-provider credentials.
type ChatConfig struct {
	Provider string // "openrouter" or "gemini"
	APIKey   string
	Model    string
	SiteURL  string // OpenRouter attribution headers
	SiteName string
}

// NewChatClient builds the configured provider. Mirrors the embedding-client
// factory shape: one switch, each branch validating its own requirements.
func NewChatClient(cfg ChatConfig) (ChatClient, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openrouter":
		return NewOpenRouterClient(cfg), nil
	case "gemini":
		return NewGeminiChatClient(cfg)
	default:
		return nil, ErrUnsupportedProvider
	}
}
