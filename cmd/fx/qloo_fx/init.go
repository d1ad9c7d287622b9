package qloo_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"vibevoyager/internal/infra"
	"vibevoyager/internal/services"
)

var Module = fx.Provide(provideQlooService)

func provideQlooService(cfg infra.Config, logger *zap.Logger) services.QlooServiceInterface {
	return services.NewQlooService(cfg.QlooBaseURL, cfg.QlooAPIKey, logger)
}
