package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/user-subscription-api/internal/http/response"
	"github.com/magabrotheeeer/user-subscription-api/internal/lib/sl"
	"github.com/magabrotheeeer/user-subscription-api/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	List(ctx context.Context) ([]models.SubscriptionRead, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список подписок
// @Tags Subscriptions
// @Produce  json
// @Success 200 {array} models.SubscriptionRead
// @Failure 501 {object} response.ErrorResponse "Не реализовано"
// @Router /subscriptions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.list"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	subs, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list subscriptions", sl.Err(err))
		response.ServiceError(w, r, err, "failed to list subscriptions")
		return
	}
	if subs == nil {
		subs = []models.SubscriptionRead{}
	}

	log.Info("list subscriptions", slog.Int("count", len(subs)))
	render.JSON(w, r, subs)
}
