package port

import (
	"context"

	"github.com/google/uuid"

	"tablero/internal/domain"
)

// UserRepository persists staff accounts.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
