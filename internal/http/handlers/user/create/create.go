// Package create реализует HTTP-обработчик создания пользователя.
//
// Handler принимает JSON-запрос UserCreate, валидирует его и только после
// успешной валидации вызывает сервис. Ошибки валидации возвращаются списком по полям.
package create

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/user-subscription-api/internal/http/response"
	"github.com/magabrotheeeer/user-subscription-api/internal/lib/sl"
	"github.com/magabrotheeeer/user-subscription-api/internal/lib/validation"
	"github.com/magabrotheeeer/user-subscription-api/internal/models"
)

// Handler управляет HTTP-запросами на создание пользователей.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики пользователей
	validate *validator.Validate // Валидатор тела запроса
}

// Service описывает интерфейс бизнес-логики создания пользователя.
type Service interface {
	Create(ctx context.Context, req models.UserCreate) (*models.UserRead, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validation.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать пользователя
// @Description Валидирует тело запроса и создает пользователя. Операция пока не реализована.
// @Tags Users
// @Accept  json
// @Produce  json
// @Param request body models.UserCreate true "Данные нового пользователя"
// @Success 200 {object} models.UserRead
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ValidationErrorResponse "Ошибка валидации"
// @Failure 501 {object} response.ErrorResponse "Не реализовано"
// @Router /users [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.create"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.UserCreate
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		response.DecodeError(w, r, err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Debug("all fields are validated")

	user, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create user", sl.Err(err))
		response.ServiceError(w, r, err, "could not create user")
		return
	}

	if user == nil {
		log.Error("service returned no user")
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create user"))
		return
	}

	log.Info("user created", slog.String("id", user.ID.String()))
	render.JSON(w, r, user)
}
