package main

import (
	"context"
	"net/http"

	"havjob/internal/auth"
	"havjob/internal/config"
	"havjob/internal/db"
	"havjob/internal/handlers"
	"havjob/internal/logger"
	"havjob/internal/middle"
	"havjob/internal/server"
	"havjob/internal/services"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

func serverLifecycle(lc fx.Lifecycle, srv *http.Server, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() { // non-blocking server start
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("server failed to start", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			logger.NewLogger,
			auth.NewTokenManager,
			server.NewServer,
			db.NewDBConnection,
		),
		fx.Invoke(
			serverLifecycle,
		),
		handlers.Module,
		middle.Module,
		services.Module,
	)
	app.Run()
}
