package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"tablero/internal/domain"
	"tablero/internal/port"
)

type movementRepo struct {
	db *sqlx.DB
}

// NewMovementRepo creates a new PostgreSQL-backed MovementRepository.
func NewMovementRepo(db *sqlx.DB) port.MovementRepository {
	return &movementRepo{db: db}
}

// movementUpdatable lists the transition columns for movement records.
var movementUpdatable = map[string]bool{
	"reconciled":      true,
	"sealed_envelope": true,
	"booked":          true,
}

const movementColumns = `id, kind, client, driver, date, cash_amount, check_amount,
	reconciled, sealed_envelope, booked, items, created_at, updated_at`

func (r *movementRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Movement, error) {
	var m domain.Movement
	err := r.db.GetContext(ctx, &m,
		"SELECT "+movementColumns+" FROM movements WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMovementNotFound
		}
		return nil, fmt.Errorf("movementRepo.GetByID: %w", err)
	}
	return &m, nil
}

func (r *movementRepo) List(ctx context.Context) ([]domain.Movement, error) {
	movements := []domain.Movement{}
	err := r.db.SelectContext(ctx, &movements,
		"SELECT "+movementColumns+" FROM movements ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("movementRepo.List: %w", err)
	}
	return movements, nil
}

func (r *movementRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	clause, args, next, err := buildSetClause(fields, movementUpdatable)
	if err != nil {
		return fmt.Errorf("movementRepo.UpdateFields: %w", err)
	}

	query := fmt.Sprintf("UPDATE movements SET %s, updated_at = $%d WHERE id = $%d",
		clause, next, next+1)
	args = append(args, time.Now().UTC(), id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("movementRepo.UpdateFields: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrMovementNotFound
	}
	return nil
}

func (r *movementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM movements WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("movementRepo.Delete: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrMovementNotFound
	}
	return nil
}
