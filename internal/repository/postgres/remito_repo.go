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

type remitoRepo struct {
	db *sqlx.DB
}

// NewRemitoRepo creates a new PostgreSQL-backed RemitoRepository.
func NewRemitoRepo(db *sqlx.DB) port.RemitoRepository {
	return &remitoRepo{db: db}
}

// remitoUpdatable lists the columns staff may patch field by field.
var remitoUpdatable = map[string]bool{
	"number":              true,
	"issue_date":          true,
	"client":              true,
	"line_items":          true,
	"annotations":         true,
	"needs_production":    true,
	"production_state":    true,
	"preparation_state":   true,
	"dispatch_window":     true,
	"priority":            true,
	"is_external_carrier": true,
	"rejected_items":      true,
}

const remitoColumns = `id, number, issue_date, client, line_items, annotations,
	needs_production, production_state, preparation_state, dispatch_window,
	priority, is_external_carrier, delivery_proof, rejected_items,
	created_by, created_at, updated_at`

func (r *remitoRepo) Create(ctx context.Context, rem *domain.Remito) error {
	now := time.Now().UTC()
	rem.CreatedAt = now
	rem.UpdatedAt = now

	query := `INSERT INTO remitos (` + remitoColumns + `) VALUES (
		$1, $2, $3, $4, $5, $6,
		$7, $8, $9, $10,
		$11, $12, $13, $14,
		$15, $16, $17
	)`

	_, err := r.db.ExecContext(ctx, query,
		rem.ID, rem.Number, rem.IssueDate, rem.Client, rem.LineItems, rem.Annotations,
		rem.NeedsProduction, rem.ProductionState, rem.PreparationState, rem.DispatchWindow,
		rem.Priority, rem.IsExternalCarrier, rem.DeliveryProof, rem.RejectedItems,
		rem.CreatedBy, rem.CreatedAt, rem.UpdatedAt)
	if err != nil {
		return fmt.Errorf("remitoRepo.Create: %w", err)
	}
	return nil
}

func (r *remitoRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Remito, error) {
	var rem domain.Remito
	err := r.db.GetContext(ctx, &rem,
		"SELECT "+remitoColumns+" FROM remitos WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRemitoNotFound
		}
		return nil, fmt.Errorf("remitoRepo.GetByID: %w", err)
	}
	return &rem, nil
}

func (r *remitoRepo) ListActive(ctx context.Context) ([]domain.Remito, error) {
	remitos := []domain.Remito{}
	err := r.db.SelectContext(ctx, &remitos,
		"SELECT "+remitoColumns+" FROM remitos ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("remitoRepo.ListActive: %w", err)
	}
	return remitos, nil
}

func (r *remitoRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	clause, args, next, err := buildSetClause(fields, remitoUpdatable)
	if err != nil {
		return fmt.Errorf("remitoRepo.UpdateFields: %w", err)
	}

	query := fmt.Sprintf("UPDATE remitos SET %s, updated_at = $%d WHERE id = $%d",
		clause, next, next+1)
	args = append(args, time.Now().UTC(), id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("remitoRepo.UpdateFields: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrRemitoNotFound
	}
	return nil
}

func (r *remitoRepo) MoveToHistory(ctx context.Context, rem *domain.Remito) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("remitoRepo.MoveToHistory begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rem.UpdatedAt = time.Now().UTC()
	insert := `INSERT INTO remitos_history (` + remitoColumns + `) VALUES (
		$1, $2, $3, $4, $5, $6,
		$7, $8, $9, $10,
		$11, $12, $13, $14,
		$15, $16, $17
	)`
	_, err = tx.ExecContext(ctx, insert,
		rem.ID, rem.Number, rem.IssueDate, rem.Client, rem.LineItems, rem.Annotations,
		rem.NeedsProduction, rem.ProductionState, rem.PreparationState, rem.DispatchWindow,
		rem.Priority, rem.IsExternalCarrier, rem.DeliveryProof, rem.RejectedItems,
		rem.CreatedBy, rem.CreatedAt, rem.UpdatedAt)
	if err != nil {
		return fmt.Errorf("remitoRepo.MoveToHistory insert: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM remitos WHERE id = $1", rem.ID)
	if err != nil {
		return fmt.Errorf("remitoRepo.MoveToHistory delete: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrRemitoNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("remitoRepo.MoveToHistory commit: %w", err)
	}
	return nil
}

func (r *remitoRepo) ListHistory(ctx context.Context) ([]domain.Remito, error) {
	remitos := []domain.Remito{}
	err := r.db.SelectContext(ctx, &remitos,
		"SELECT "+remitoColumns+" FROM remitos_history ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("remitoRepo.ListHistory: %w", err)
	}
	return remitos, nil
}

func (r *remitoRepo) GetHistoryByID(ctx context.Context, id uuid.UUID) (*domain.Remito, error) {
	var rem domain.Remito
	err := r.db.GetContext(ctx, &rem,
		"SELECT "+remitoColumns+" FROM remitos_history WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRemitoNotFound
		}
		return nil, fmt.Errorf("remitoRepo.GetHistoryByID: %w", err)
	}
	return &rem, nil
}

func (r *remitoRepo) DeleteFromHistory(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM remitos_history WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("remitoRepo.DeleteFromHistory: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrRemitoNotFound
	}
	return nil
}
