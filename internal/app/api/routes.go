// Package api собирает HTTP-приложение: маршруты, middleware и сервер.
package api

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/magabrotheeeer/user-subscription-api/docs"
	"github.com/magabrotheeeer/user-subscription-api/internal/config"
	"github.com/magabrotheeeer/user-subscription-api/internal/http/handlers/health"
	"github.com/magabrotheeeer/user-subscription-api/internal/http/handlers/root"
	subcreate "github.com/magabrotheeeer/user-subscription-api/internal/http/handlers/subscription/create"
	sublist "github.com/magabrotheeeer/user-subscription-api/internal/http/handlers/subscription/list"
	subread "github.com/magabrotheeeer/user-subscription-api/internal/http/handlers/subscription/read"
	subremove "github.com/magabrotheeeer/user-subscription-api/internal/http/handlers/subscription/remove"
	subupdate "github.com/magabrotheeeer/user-subscription-api/internal/http/handlers/subscription/update"
	usercreate "github.com/magabrotheeeer/user-subscription-api/internal/http/handlers/user/create"
	userlist "github.com/magabrotheeeer/user-subscription-api/internal/http/handlers/user/list"
	userread "github.com/magabrotheeeer/user-subscription-api/internal/http/handlers/user/read"
	userremove "github.com/magabrotheeeer/user-subscription-api/internal/http/handlers/user/remove"
	userupdate "github.com/magabrotheeeer/user-subscription-api/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/user-subscription-api/internal/http/middlewarectx"
	subservice "github.com/magabrotheeeer/user-subscription-api/internal/services/subscription"
	userservice "github.com/magabrotheeeer/user-subscription-api/internal/services/user"
)

// Services объединяет сервисы, которые обслуживают маршруты.
type Services struct {
	Users         *userservice.UserService
	Subscriptions *subservice.SubscriptionService
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg config.RateLimit, registry *prometheus.Registry, services Services) {
	metrics := middlewarectx.NewHTTPMetrics(registry)

	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		metrics.Middleware,
	)

	r.Get("/", root.New().ServeHTTP)
	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)

	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, cfg.RPS, cfg.Burst))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userlist.New(logger, services.Users).ServeHTTP)
			r.Post("/", usercreate.New(logger, services.Users).ServeHTTP)
			r.Get("/{id}", userread.New(logger, services.Users).ServeHTTP)
			r.Put("/{id}", userupdate.New(logger, services.Users).ServeHTTP)
			r.Delete("/{id}", userremove.New(logger, services.Users).ServeHTTP)
		})

		r.Route("/subscriptions", func(r chi.Router) {
			r.Get("/", sublist.New(logger, services.Subscriptions).ServeHTTP)
			r.Post("/", subcreate.New(logger, services.Subscriptions).ServeHTTP)
			r.Get("/{id}", subread.New(logger, services.Subscriptions).ServeHTTP)
			r.Put("/{id}", subupdate.New(logger, services.Subscriptions).ServeHTTP)
			r.Delete("/{id}", subremove.New(logger, services.Subscriptions).ServeHTTP)
		})
	})
}
