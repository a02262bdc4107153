package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/user-subscription-api/internal/lib/validation"
	"github.com/magabrotheeeer/user-subscription-api/internal/services"
)

func TestOK(t *testing.T) {
	resp := OK()

	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.Empty(t, resp.Errors)
}

func TestError(t *testing.T) {
	resp := Error("something went wrong")

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "something went wrong", resp.Error)
}

func TestValidationError(t *testing.T) {
	type payload struct {
		Email    string `json:"email" validate:"required,email"`
		Username string `json:"username" validate:"required"`
	}

	err := validation.New().Struct(payload{Email: "not-an-email"})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "validation failed: email, username", resp.Error)
	assert.Equal(t, []validation.FieldError{
		{Field: "email", Error: "must be a valid email address"},
		{Field: "username", Error: "is a required field"},
	}, resp.Errors)
}

func TestInvalidFields(t *testing.T) {
	resp := InvalidFields(validation.FieldError{Field: "id", Error: "must be a valid UUID"})

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "validation failed: id", resp.Error)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "id", resp.Errors[0].Field)
}

func TestServiceError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "не реализовано",
			err:            fmt.Errorf("services.user.Create: %w", services.ErrNotImplemented),
			expectedStatus: http.StatusNotImplemented,
			expectedBody:   `{"status":"Error","error":"Not implemented"}`,
		},
		{
			name:           "прочая ошибка",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not create user"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/users", nil)
			w := httptest.NewRecorder()

			ServiceError(w, r, tt.err, "could not create user")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
		})
	}
}

func TestDecodeError(t *testing.T) {
	type payload struct {
		FirstName string  `json:"first_name"`
		BirthDate *string `json:"birth_date"`
	}

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "число вместо строки",
			body:           `{"first_name":123}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"validation failed: first_name","errors":[{"field":"first_name","error":"has invalid type"}]}`,
		},
		{
			name:           "число вместо даты",
			body:           `{"first_name":"Robert","birth_date":19061209}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"validation failed: birth_date","errors":[{"field":"birth_date","error":"has invalid type"}]}`,
		},
		{
			name:           "массив вместо объекта",
			body:           `[]`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"validation failed: body","errors":[{"field":"body","error":"has invalid type"}]}`,
		},
		{
			name:           "битый JSON",
			body:           `{"first_name":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			err := json.NewDecoder(strings.NewReader(tt.body)).Decode(&p)
			require.Error(t, err)

			r := httptest.NewRequest(http.MethodPost, "/users", nil)
			w := httptest.NewRecorder()

			DecodeError(w, r, err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
