package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/magabrotheeeer/user-subscription-api/internal/config"
	subservice "github.com/magabrotheeeer/user-subscription-api/internal/services/subscription"
	userservice "github.com/magabrotheeeer/user-subscription-api/internal/services/user"
)

// App владеет HTTP-сервером приложения.
type App struct {
	server          *http.Server
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// New собирает сервисы, маршруты и HTTP-сервер по конфигу.
func New(cfg *config.Config, logger *slog.Logger) *App {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	services := Services{
		Users:         userservice.NewUserService(logger),
		Subscriptions: subservice.NewSubscriptionService(logger),
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg.RateLimit, registry, services)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:          srv,
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// Handler возвращает корневой обработчик приложения.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run запускает сервер и блокируется до его остановки или отмены ctx.
// После отмены ctx сервер завершается gracefully в пределах ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
