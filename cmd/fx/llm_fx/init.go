package llm_fx

import (
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"vibevoyager/internal/infra"
	"vibevoyager/pkg/utils"
)

var Module = fx.Provide(ProvideChatClient)

// ProvideChatClient builds the configured generative-model client. The
// provider's API key is required; a missing key fails startup rather than
// every request.
func ProvideChatClient(cfg infra.Config, logger *zap.Logger) (utils.ChatClient, error) {
	chatCfg := utils.ChatConfig{
		Provider: cfg.LLMProvider,
		SiteURL:  cfg.SiteURL,
		SiteName: cfg.SiteName,
	}

	switch strings.ToLower(cfg.LLMProvider) {
	case "gemini":
		chatCfg.APIKey = cfg.GeminiAPIKey
		chatCfg.Model = cfg.GeminiModel
	default:
		chatCfg.APIKey = cfg.OpenRouterAPIKey
		chatCfg.Model = cfg.OpenRouterModel
	}

	logger.Info("initializing chat client",
		zap.String("provider", cfg.LLMProvider),
		zap.String("model", chatCfg.Model))

	if chatCfg.APIKey == "" {
		logger.Warn("chat client API key is empty; generation calls will fail",
			zap.String("provider", cfg.LLMProvider))
	}

	return utils.NewChatClient(chatCfg)
}
