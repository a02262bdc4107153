// Package read реализует HTTP-обработчик получения пользователя по ID.
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

// Handler обрабатывает запросы на получение пользователя по идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения пользователя.
type Service interface {
	Read(ctx context.Context, id uuid.UUID) (*models.UserRead, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить пользователя
// @Tags Users
// @Produce  json
// @Param id path string true "ID пользователя (UUID)"
// @Success 200 {object} models.UserRead
// @Failure 422 {object} response.ValidationErrorResponse "Некорректный ID"
// @Failure 501 {object} response.ErrorResponse "Не реализовано"
// @Router /users/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.read"
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

	user, err := h.service.Read(r.Context(), id)
	if err != nil {
		log.Error("failed to read user", sl.Err(err))
		response.ServiceError(w, r, err, "could not read user")
		return
	}

	render.JSON(w, r, user)
}
