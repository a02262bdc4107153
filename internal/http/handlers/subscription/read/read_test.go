package read

import (
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

func (m *MockService) Read(ctx context.Context, id uuid.UUID) (*models.SubscriptionRead, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.SubscriptionRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	id := uuid.New()

	for _, tc := range []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
	}{
		{
			name: "операция не реализована",
			id:   id.String(),
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, id).Return(nil, fmt.Errorf("op: %w", services.ErrNotImplemented))
			},
			expectedStatus: http.StatusNotImplemented,
		},
		{
			name:           "некорректный id",
			id:             "123",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := new(MockService)
			tc.setupMock(m)

			req := httptest.NewRequest(http.MethodGet, "/subscriptions/"+tc.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tc.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			New(logger, m).ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			m.AssertExpectations(t)
		})
	}
}
