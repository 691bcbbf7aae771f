package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"accounts/internal/account"
	"accounts/internal/api"
	"accounts/internal/api/handler/v1handler"
	"accounts/internal/catalog"
	"accounts/internal/config"
	"accounts/internal/order"
	"accounts/internal/worker"
	"accounts/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			cache, closeCache := getRedis(ctx, cfg)
			defer closeCache()

			accounts := account.New(strg, cache, account.NewOptions(cfg))
			deps := api.Deps{
				Deps: v1handler.Deps{
					Accounts:    accounts,
					Catalog:     catalog.New(strg),
					Orders:      order.New(strg, cache),
					Environment: cfg.Environment,
				},
			}

			stopWebserver := setupServer(ctx, cfg, deps)

			riverClient, err := worker.Start(ctx, cfg, strg.Pool, getMailer(ctx, cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
