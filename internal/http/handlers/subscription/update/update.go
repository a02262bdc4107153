// Package update реализует HTTP-обработчик частичного обновления подписки.
package update

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/user-subscription-api/internal/http/response"
	"github.com/magabrotheeeer/user-subscription-api/internal/lib/sl"
	"github.com/magabrotheeeer/user-subscription-api/internal/lib/validation"
	"github.com/magabrotheeeer/user-subscription-api/internal/models"
)

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

type Service interface {
	Update(ctx context.Context, id uuid.UUID, req models.SubscriptionUpdate) (*models.SubscriptionRead, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validation.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить подписку
// @Description Частичное обновление: меняются только переданные поля. Операция пока не реализована.
// @Tags Subscriptions
// @Accept  json
// @Produce  json
// @Param id path string true "ID подписки (UUID)"
// @Param request body models.SubscriptionUpdate true "Изменяемые поля"
// @Success 200 {object} models.SubscriptionRead
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ValidationErrorResponse "Ошибка валидации"
// @Failure 501 {object} response.ErrorResponse "Не реализовано"
// @Router /subscriptions/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.update"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.SubscriptionUpdate
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		response.DecodeError(w, r, err)
		return
	}

	// Ошибки тела и идентификатора из пути возвращаются одним списком.
	var invalid []validation.FieldError
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Info("invalid id in url", sl.Err(err))
		invalid = append(invalid, validation.FieldError{Field: "id", Error: validation.MsgInvalidUUID})
	}
	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		invalid = append(invalid, validation.FieldErrors(err.(validator.ValidationErrors))...)
	}
	if len(invalid) > 0 {
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.InvalidFields(invalid...))
		return
	}

	sub, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		log.Error("failed to update subscription", sl.Err(err))
		response.ServiceError(w, r, err, "could not update subscription")
		return
	}

	log.Info("subscription updated", slog.String("id", id.String()))
	render.JSON(w, r, sub)
}
