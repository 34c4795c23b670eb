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

type ticketRepo struct {
	db *sqlx.DB
}

// NewTicketRepo creates a new PostgreSQL-backed TicketRepository.
func NewTicketRepo(db *sqlx.DB) port.TicketRepository {
	return &ticketRepo{db: db}
}

const ticketColumns = `id, number, client, date, items, state,
	work_description, delivery_window, created_at, updated_at`

func (r *ticketRepo) Create(ctx context.Context, t *domain.SupportTicket) error {
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	query := `INSERT INTO support_tickets (` + ticketColumns + `) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
	)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Number, t.Client, t.Date, t.Items, t.State,
		t.WorkDescription, t.DeliveryWindow, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ticketRepo.Create: %w", err)
	}
	return nil
}

func (r *ticketRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SupportTicket, error) {
	var t domain.SupportTicket
	err := r.db.GetContext(ctx, &t,
		"SELECT "+ticketColumns+" FROM support_tickets WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("ticketRepo.GetByID: %w", err)
	}
	return &t, nil
}

func (r *ticketRepo) List(ctx context.Context) ([]domain.SupportTicket, error) {
	tickets := []domain.SupportTicket{}
	err := r.db.SelectContext(ctx, &tickets,
		"SELECT "+ticketColumns+" FROM support_tickets ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("ticketRepo.List: %w", err)
	}
	return tickets, nil
}

func (r *ticketRepo) Update(ctx context.Context, t *domain.SupportTicket) error {
	t.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE support_tickets SET number = $1, client = $2, date = $3, items = $4,
		 state = $5, work_description = $6, delivery_window = $7, updated_at = $8
		 WHERE id = $9`,
		t.Number, t.Client, t.Date, t.Items,
		t.State, t.WorkDescription, t.DeliveryWindow, t.UpdatedAt, t.ID)
	if err != nil {
		return fmt.Errorf("ticketRepo.Update: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrTicketNotFound
	}
	return nil
}

func (r *ticketRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM support_tickets WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("ticketRepo.Delete: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrTicketNotFound
	}
	return nil
}
