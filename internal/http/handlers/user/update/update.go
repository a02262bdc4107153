// Package update реализует HTTP-обработчик частичного обновления пользователя.
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
	Update(ctx context.Context, id uuid.UUID, req models.UserUpdate) (*models.UserRead, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validation.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить пользователя
// @Description Частичное обновление: меняются только переданные поля. Операция пока не реализована.
// @Tags Users
// @Accept  json
// @Produce  json
// @Param id path string true "ID пользователя (UUID)"
// @Param request body models.UserUpdate true "Изменяемые поля"
// @Success 200 {object} models.UserRead
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ValidationErrorResponse "Ошибка валидации"
// @Failure 501 {object} response.ErrorResponse "Не реализовано"
// @Router /users/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.update"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.UserUpdate
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

	user, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		log.Error("failed to update user", sl.Err(err))
		response.ServiceError(w, r, err, "could not update user")
		return
	}

	log.Info("user updated", slog.String("id", id.String()))
	render.JSON(w, r, user)
}
