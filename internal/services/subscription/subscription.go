// Package subscription содержит бизнес-логику работы с подписками.
// Как и сервис пользователей, пока не имеет хранилища и на каждую
// операцию отвечает services.ErrNotImplemented.
package subscription

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/user-subscription-api/internal/models"
	"github.com/magabrotheeeer/user-subscription-api/internal/services"
)

// SubscriptionService реализует операции над подписками.
type SubscriptionService struct {
	log *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{log: log}
}

// List возвращает все подписки.
func (s *SubscriptionService) List(ctx context.Context) ([]models.SubscriptionRead, error) {
	const op = "services.subscription.List"
	return nil, s.stub(ctx, op)
}

// Create создает подписку. Клиентский subscription_id идентификатором не становится.
func (s *SubscriptionService) Create(ctx context.Context, req models.SubscriptionCreate) (*models.SubscriptionRead, error) {
	const op = "services.subscription.Create"
	return nil, s.stub(ctx, op, slog.String("service", req.Service))
}

// Read возвращает подписку по ID.
func (s *SubscriptionService) Read(ctx context.Context, id uuid.UUID) (*models.SubscriptionRead, error) {
	const op = "services.subscription.Read"
	return nil, s.stub(ctx, op, slog.String("id", id.String()))
}

// Update частично обновляет подписку по ID.
func (s *SubscriptionService) Update(ctx context.Context, id uuid.UUID, _ models.SubscriptionUpdate) (*models.SubscriptionRead, error) {
	const op = "services.subscription.Update"
	return nil, s.stub(ctx, op, slog.String("id", id.String()))
}

// Remove удаляет подписку по ID.
func (s *SubscriptionService) Remove(ctx context.Context, id uuid.UUID) error {
	const op = "services.subscription.Remove"
	return s.stub(ctx, op, slog.String("id", id.String()))
}

func (s *SubscriptionService) stub(ctx context.Context, op string, attrs ...any) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	s.log.DebugContext(ctx, "operation is not implemented", append([]any{slog.String("op", op)}, attrs...)...)
	return fmt.Errorf("%s: %w", op, services.ErrNotImplemented)
}
