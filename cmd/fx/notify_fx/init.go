package notify_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"vibevoyager/internal/api/ws"
	"vibevoyager/internal/infra"
	"vibevoyager/internal/repositories"
)

var Module = fx.Options(
	fx.Provide(infra.NewNotifier, provideHub),
	fx.Invoke(runHub),
)

func provideHub(logger *zap.Logger) *ws.Hub {
	return ws.NewHub(logger)
}

// runHub starts the broadcast loop and bridges archive-change notifications
// into it for the lifetime of the process.
func runHub(lc fx.Lifecycle, hub *ws.Hub, notifier infra.Notifier) {
	var cancelRelay func()

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go hub.Run()
			cancelRelay = hub.Relay(notifier, repositories.StorageKey)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cancelRelay != nil {
				cancelRelay()
			}
			hub.Stop()
			return nil
		},
	})
}
