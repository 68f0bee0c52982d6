// Command erp-ui serves the Destinity ERP browser pages, their static
// assets and the API proxy to the REST backend.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/destinity/erp-ui/config"
	redisadapter "github.com/destinity/erp-ui/internal/adapters/redis"
	"github.com/destinity/erp-ui/internal/bootstrap"
	httpx "github.com/destinity/erp-ui/internal/http"
	"github.com/destinity/erp-ui/internal/ports"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	logger := bootstrap.InitLogger()
	err := run(ctx, logger)
	stop()
	if err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	logStartupInfo(ctx, logger, &cfg)

	var revocations ports.RevocationStore
	if cfg.Redis.Enabled {
		client, cerr := bootstrap.ConnectRedis(ctx, bootstrap.RedisOptions{Config: cfg.Redis, Logger: logger})
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := client.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
		revocations = redisadapter.NewRevocationStoreWithPrefix(client, cfg.Redis.KeyPrefix)
	} else {
		logger.InfoContext(ctx, "token revocation disabled", "reason", "REDIS_ENABLED=false")
	}

	var metrics *httpx.Metrics
	if cfg.Metrics.Enabled {
		metrics = httpx.NewMetrics()
	}

	return bootstrap.RunServer(ctx, bootstrap.ServerConfig{
		Config:      &cfg,
		Revocations: revocations,
		Metrics:     metrics,
		Logger:      logger,
	})
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting erp ui server",
		"addr", cfg.HTTP.Addr,
		"base_path", cfg.HTTP.BasePath,
		"backend", cfg.Backend.URL,
		"dev", cfg.IsDev,
		"redis", cfg.Redis.Enabled,
		"metrics_path", cfg.Metrics.Path)
}
