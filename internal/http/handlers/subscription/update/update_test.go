package update

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/user-subscription-api/internal/models"
	"github.com/magabrotheeeer/user-subscription-api/internal/services"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, id uuid.UUID, req models.SubscriptionUpdate) (*models.SubscriptionRead, error) {
	args := m.Called(ctx, id, req)
	if res := args.Get(0); res != nil {
		return res.(*models.SubscriptionRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	id := uuid.New()

	tests := []struct {
		name           string
		id             string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "смена пароля",
			id:   id.String(),
			body: `{"password":"Brooklyn!199"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, id, mock.MatchedBy(func(req models.SubscriptionUpdate) bool {
					return req.Password != nil && *req.Password == "Brooklyn!199" && req.Service == nil
				})).Return(nil, fmt.Errorf("op: %w", services.ErrNotImplemented))
			},
			expectedStatus: http.StatusNotImplemented,
			expectedBody:   `{"status":"Error","error":"Not implemented"}`,
		},
		{
			name: "пустое обновление допустимо",
			id:   id.String(),
			body: `{}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, id, models.SubscriptionUpdate{}).
					Return(&models.SubscriptionRead{SubscriptionID: id}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"subscription_id":"` + id.String() + `"`,
		},
		{
			name:           "некорректный id в url",
			id:             "not-a-uuid",
			body:           `{}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"field":"id","error":"must be a valid UUID"}`,
		},
		{
			name:           "число вместо сервиса",
			id:             id.String(),
			body:           `{"service":42}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"errors":[{"field":"service","error":"has invalid type"}]`,
		},
		{
			name:           "битый JSON",
			id:             id.String(),
			body:           `{"service":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPut, "/subscriptions/"+tt.id, bytes.NewBufferString(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			New(logger, mockService).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
