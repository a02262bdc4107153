package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/user-subscription-api/internal/http/response"
	"github.com/magabrotheeeer/user-subscription-api/internal/lib/sl"
	"github.com/magabrotheeeer/user-subscription-api/internal/lib/validation"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Remove(ctx context.Context, id uuid.UUID) error
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить подписку
// @Tags Subscriptions
// @Produce  json
// @Param id path string true "ID подписки (UUID)"
// @Success 204 "Подписка удалена"
// @Failure 422 {object} response.ValidationErrorResponse "Некорректный ID"
// @Failure 501 {object} response.ErrorResponse "Не реализовано"
// @Router /subscriptions/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.remove"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Info("invalid id in url", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.InvalidFields(validation.FieldError{Field: "id", Error: validation.MsgInvalidUUID}))
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		log.Error("failed to delete subscription", sl.Err(err))
		response.ServiceError(w, r, err, "could not delete subscription")
		return
	}

	log.Info("subscription deleted", slog.String("id", id.String()))
	render.NoContent(w, r)
}
