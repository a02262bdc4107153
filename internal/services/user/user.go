// Package user содержит бизнес-логику работы с пользователями.
//
// Хранилища у сервиса пока нет: каждая операция проверяет контекст,
// пишет отладочную запись и возвращает services.ErrNotImplemented.
// Когда появится персистентность, хранилище будет передаваться в
// NewUserService через интерфейс с методами get/list/create/update/delete.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/user-subscription-api/internal/models"
	"github.com/magabrotheeeer/user-subscription-api/internal/services"
)

// UserService реализует операции над пользователями.
type UserService struct {
	log *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(log *slog.Logger) *UserService {
	return &UserService{log: log}
}

// List возвращает всех пользователей.
func (s *UserService) List(ctx context.Context) ([]models.UserRead, error) {
	const op = "services.user.List"
	return nil, s.stub(ctx, op)
}

// Create создает пользователя по провалидированному запросу.
func (s *UserService) Create(ctx context.Context, req models.UserCreate) (*models.UserRead, error) {
	const op = "services.user.Create"
	return nil, s.stub(ctx, op, slog.String("username", req.Username))
}

// Read возвращает пользователя по ID.
func (s *UserService) Read(ctx context.Context, id uuid.UUID) (*models.UserRead, error) {
	const op = "services.user.Read"
	return nil, s.stub(ctx, op, slog.String("id", id.String()))
}

// Update частично обновляет пользователя по ID.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, _ models.UserUpdate) (*models.UserRead, error) {
	const op = "services.user.Update"
	return nil, s.stub(ctx, op, slog.String("id", id.String()))
}

// Remove удаляет пользователя по ID.
func (s *UserService) Remove(ctx context.Context, id uuid.UUID) error {
	const op = "services.user.Remove"
	return s.stub(ctx, op, slog.String("id", id.String()))
}

func (s *UserService) stub(ctx context.Context, op string, attrs ...any) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	s.log.DebugContext(ctx, "operation is not implemented", append([]any{slog.String("op", op)}, attrs...)...)
	return fmt.Errorf("%s: %w", op, services.ErrNotImplemented)
}
