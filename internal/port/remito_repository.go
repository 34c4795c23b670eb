package port

import (
	"context"

	"github.com/google/uuid"

	"tablero/internal/domain"
)

// RemitoRepository persists delivery notes. Active remitos and the
// delivered history live in separate tables; delivery moves a row from
// one to the other in a single transaction.
type RemitoRepository interface {
	Create(ctx context.Context, r *domain.Remito) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Remito, error)
	ListActive(ctx context.Context) ([]domain.Remito, error)

	// UpdateFields applies a partial, field-level update. Keys are
	// column names; unknown keys are rejected. Last write wins per
	// field, matching how two staff members may edit the same record
	// concurrently.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error

	// MoveToHistory writes the delivered remito into the history table
	// and removes it from the active table, atomically.
	MoveToHistory(ctx context.Context, r *domain.Remito) error
	ListHistory(ctx context.Context) ([]domain.Remito, error)
	GetHistoryByID(ctx context.Context, id uuid.UUID) (*domain.Remito, error)
	DeleteFromHistory(ctx context.Context, id uuid.UUID) error
}
