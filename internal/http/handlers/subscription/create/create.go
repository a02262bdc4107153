// Package create реализует HTTP-обработчик создания подписки.
//
// Клиентский subscription_id обязателен в запросе, но в ответе сервер
// возвращает собственный UUID.
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

// Handler управляет HTTP-запросами на создание подписок.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики подписок
	validate *validator.Validate // Валидатор тела запроса
}

// Service описывает интерфейс бизнес-логики создания подписки.
type Service interface {
	Create(ctx context.Context, req models.SubscriptionCreate) (*models.SubscriptionRead, error)
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
// @Summary Создать подписку
// @Description Валидирует тело запроса и создает подписку. Операция пока не реализована.
// @Tags Subscriptions
// @Accept  json
// @Produce  json
// @Param request body models.SubscriptionCreate true "Данные новой подписки"
// @Success 200 {object} models.SubscriptionRead
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ValidationErrorResponse "Ошибка валидации"
// @Failure 501 {object} response.ErrorResponse "Не реализовано"
// @Router /subscriptions [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.create"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.SubscriptionCreate
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

	sub, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create subscription", sl.Err(err))
		response.ServiceError(w, r, err, "could not create subscription")
		return
	}

	if sub == nil {
		log.Error("service returned no subscription")
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create subscription"))
		return
	}

	log.Info("subscription created", slog.String("id", sub.SubscriptionID.String()))
	render.JSON(w, r, sub)
}
