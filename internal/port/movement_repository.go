package port

import (
	"context"

	"github.com/google/uuid"

	"tablero/internal/domain"
)

// MovementRepository reads and transitions driver movement records.
// Movements are created by the drivers' own tooling, never here; the
// dashboard only reconciles, books, and deletes them.
type MovementRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Movement, error)
	List(ctx context.Context) ([]domain.Movement, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}
