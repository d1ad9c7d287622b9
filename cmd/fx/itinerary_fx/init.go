package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"vibevoyager/internal/api/controllers"
	"vibevoyager/internal/services"
)

var Module = fx.Provide(
	provideItineraryService,
	controllers.NewItineraryController)

func provideItineraryService(vibes services.VibeServiceInterface, logger *zap.Logger) services.ItineraryServiceInterface {
	return services.NewItineraryService(vibes, logger)
}
