package vibe_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"vibevoyager/internal/api/controllers"
	"vibevoyager/internal/services"
	"vibevoyager/pkg/utils"
)

var Module = fx.Provide(
	provideVibeService,
	controllers.NewVibeController,
	controllers.NewHealthController)

func provideVibeService(
	chat utils.ChatClient,
	qloo services.QlooServiceInterface,
	logger *zap.Logger,
) services.VibeServiceInterface {
	return services.NewVibeService(chat, qloo, logger)
}
