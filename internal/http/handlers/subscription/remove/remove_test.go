package remove

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/user-subscription-api/internal/services"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Remove(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func TestRemoveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	id := uuid.New()

	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedBody   string
	}{
		{"подписка удалена", nil, http.StatusNoContent, ""},
		{"операция не реализована", services.ErrNotImplemented, http.StatusNotImplemented, `{"status":"Error","error":"Not implemented"}`},
		{"ошибка сервиса", errors.New("db error"), http.StatusInternalServerError, `{"status":"Error","error":"could not delete subscription"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockService)
			m.On("Remove", mock.Anything, id).Return(tt.serviceErr)

			req := httptest.NewRequest(http.MethodDelete, "/subscriptions/"+id.String(), nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", id.String())
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			New(logger, m).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody == "" {
				assert.Empty(t, w.Body.String())
			} else {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			m.AssertExpectations(t)
		})
	}
}
