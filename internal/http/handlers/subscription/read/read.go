// Package read реализует HTTP-обработчик получения подписки по ID.
package read

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
	"github.com/magabrotheeeer/user-subscription-api/internal/models"
)

// Handler обрабатывает запросы на получение подписки по идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения подписки.
type Service interface {
	Read(ctx context.Context, id uuid.UUID) (*models.SubscriptionRead, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить подписку
// @Tags Subscriptions
// @Produce  json
// @Param id path string true "ID подписки (UUID)"
// @Success 200 {object} models.SubscriptionRead
// @Failure 422 {object} response.ValidationErrorResponse "Некорректный ID"
// @Failure 501 {object} response.ErrorResponse "Не реализовано"
// @Router /subscriptions/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.read"
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

	sub, err := h.service.Read(r.Context(), id)
	if err != nil {
		log.Error("failed to read subscription", sl.Err(err))
		response.ServiceError(w, r, err, "could not read subscription")
		return
	}

	render.JSON(w, r, sub)
}
