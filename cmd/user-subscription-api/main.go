// Package main User/Subscription API
//
// @title           User/Subscription API
// @version         1.0
// @description     Схемы пользователей и подписок с валидацией запросов. Операции над сущностями пока не реализованы.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8000
// @BasePath  /
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/magabrotheeeer/user-subscription-api/internal/app/api"
	"github.com/magabrotheeeer/user-subscription-api/internal/config"
	"github.com/magabrotheeeer/user-subscription-api/internal/lib/sl"
)

func main() {
	// .env необязателен: без него конфиг берется из окружения
	_ = godotenv.Load()

	cfg := config.MustLoad()
	logger := setupLogger(cfg.Env)

	logger.Info("starting user-subscription-api", slog.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")
	logger.Debug("loaded config\n" + cfg.String())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := api.New(cfg, logger)

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("user-subscription-api stopped gracefully")
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case config.EnvLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}
