// Package root реализует обработчик корневого маршрута API.
package root

import (
	"net/http"

	"github.com/go-chi/render"
)

// WelcomeMessage: фиксированное приветствие корневого маршрута.
const WelcomeMessage = "Welcome to the User/Subscription API. See /docs for OpenAPI UI."

// Welcome: тело ответа корневого маршрута.
type Welcome struct {
	Message string `json:"message" example:"Welcome to the User/Subscription API. See /docs for OpenAPI UI."`
}

// Handler возвращает приветственное сообщение.
type Handler struct{}

// New создает новый Handler.
func New() *Handler {
	return &Handler{}
}

// ServeHTTP godoc
// @Summary Приветствие
// @Tags System
// @Produce  json
// @Success 200 {object} root.Welcome
// @Router / [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, Welcome{Message: WelcomeMessage})
}
