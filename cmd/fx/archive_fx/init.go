package archive_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"vibevoyager/internal/api/controllers"
	"vibevoyager/internal/infra"
	"vibevoyager/internal/repositories"
	"vibevoyager/internal/services"
)

var Module = fx.Provide(
	provideArchiveRepo,
	provideArchiveService,
	controllers.NewArchiveController)

func provideArchiveRepo(cfg infra.Config) repositories.ArchiveRepository {
	return repositories.NewArchiveRepository(cfg.ArchivePath)
}

func provideArchiveService(
	repo repositories.ArchiveRepository,
	itineraries services.ItineraryServiceInterface,
	notifier infra.Notifier,
	logger *zap.Logger,
) services.ArchiveServiceInterface {
	return services.NewArchiveService(repo, itineraries, notifier, logger)
}
