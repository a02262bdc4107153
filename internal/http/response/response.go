// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON-ответов HTTP-обработчиков: успешных ответов, ошибок,
// ошибок валидации по полям и ответов на нереализованные операции.
package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/user-subscription-api/internal/lib/validation"
	"github.com/magabrotheeeer/user-subscription-api/internal/services"
)

// Response описывает стандартную структуру JSON-ответа сервера.
// Поле Status: статус запроса ("OK" или "Error").
// Поле Error: текст ошибки (при неуспехе).
// Поле Errors: ошибки валидации по полям.
type Response struct {
	Status string                  `json:"status"`
	Error  string                  `json:"error,omitempty"`
	Errors []validation.FieldError `json:"errors,omitempty"`
}

// ErrorResponse: структура ошибки для Swagger-документации.
type ErrorResponse struct {
	Status string `json:"status" example:"Error"`
	Error  string `json:"error" example:"Not implemented"`
}

// ValidationErrorResponse: структура ошибки валидации для Swagger-документации.
type ValidationErrorResponse struct {
	Status string                  `json:"status" example:"Error"`
	Error  string                  `json:"error" example:"validation failed: email"`
	Errors []validation.FieldError `json:"errors"`
}

const (
	// StatusOK: значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError: значение статуса для ответа с ошибкой.
	StatusError = "Error"

	// MsgNotImplemented: текст ошибки для нереализованных операций.
	MsgNotImplemented = "Not implemented"
	// MsgInvalidBody: текст ошибки для синтаксически некорректного JSON.
	MsgInvalidBody = "invalid request body"
)

// OK возвращает успешный Response без данных.
func OK() Response {
	return Response{Status: StatusOK}
}

// Error возвращает ответ с ошибкой и переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error:  msg,
	}
}

// ValidationError формирует ответ на основе ошибок валидатора.
func ValidationError(errs validator.ValidationErrors) Response {
	return InvalidFields(validation.FieldErrors(errs)...)
}

// InvalidFields формирует ответ со списком ошибок по полям.
// В Error перечисляются имена полей через запятую.
func InvalidFields(fields ...validation.FieldError) Response {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	return Response{
		Status: StatusError,
		Error:  "validation failed: " + strings.Join(names, ", "),
		Errors: fields,
	}
}

// ServiceError пишет ответ на ошибку сервисного слоя:
// 501 для services.ErrNotImplemented, 500 с сообщением msg для остальных.
func ServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if errors.Is(err, services.ErrNotImplemented) {
		render.Status(r, http.StatusNotImplemented)
		render.JSON(w, r, Error(MsgNotImplemented))
		return
	}
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, Error(msg))
}

// DecodeError пишет ответ на ошибку разбора тела запроса.
// Значение неверного JSON-типа считается ошибкой поля: 422 со списком полей.
// Синтаксически некорректный JSON дает 400.
func DecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, InvalidFields(validation.FieldError{Field: field, Error: validation.MsgInvalidType}))
		return
	}
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, Error(MsgInvalidBody))
}
