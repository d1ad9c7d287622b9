package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"vibevoyager/cmd/fx/archive_fx"
	"vibevoyager/cmd/fx/itinerary_fx"
	"vibevoyager/cmd/fx/llm_fx"
	"vibevoyager/cmd/fx/notify_fx"
	"vibevoyager/cmd/fx/qloo_fx"
	"vibevoyager/cmd/fx/vibe_fx"
	"vibevoyager/internal/api/controllers"
	"vibevoyager/internal/api/ws"
	"vibevoyager/internal/infra"
	"vibevoyager/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(infra.LoadConfig, ProvideLogger),
		llm_fx.Module,
		qloo_fx.Module,
		vibe_fx.Module,
		itinerary_fx.Module,
		archive_fx.Module,
		notify_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg infra.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", cfg.Port))
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return logger.Sync()
		},
	})
}

func ProvideRouter(
	vibeController *controllers.VibeController,
	itineraryController *controllers.ItineraryController,
	archiveController *controllers.ArchiveController,
	healthController *controllers.HealthController,
	hub *ws.Hub,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, vibeController, itineraryController, archiveController, healthController, hub)

	return r
}

func RegisterRoutes(r *gin.Engine,
	vibeController *controllers.VibeController,
	itineraryController *controllers.ItineraryController,
	archiveController *controllers.ArchiveController,
	healthController *controllers.HealthController,
	hub *ws.Hub) {

	vibesGroup := r.Group("/vibes")
	vibesGroup.POST("/generate", vibeController.GenerateVibeHandler)

	itinerariesGroup := r.Group("/itineraries")
	itinerariesGroup.POST("", itineraryController.StartItineraryHandler)
	itinerariesGroup.GET("/:id", itineraryController.GetItineraryHandler)
	itinerariesGroup.POST("/:id/days", itineraryController.AppendDayHandler)

	archiveGroup := r.Group("/archive")
	archiveGroup.GET("", archiveController.ListArchiveHandler)
	archiveGroup.POST("", archiveController.SaveItineraryHandler)
	archiveGroup.DELETE("/:id", archiveController.DeleteItineraryHandler)
	archiveGroup.POST("/undo", archiveController.UndoHandler)

	healthGroup := r.Group("/health")
	healthGroup.GET("/ai", healthController.AIHealthHandler)
	healthGroup.GET("/qloo", healthController.QlooHealthHandler)

	r.GET("/ws/archive", hub.ServeWS)
}
