package port

import (
	"context"

	"github.com/google/uuid"

	"tablero/internal/domain"
)

// TicketRepository persists support tickets.
type TicketRepository interface {
	Create(ctx context.Context, t *domain.SupportTicket) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SupportTicket, error)
	List(ctx context.Context) ([]domain.SupportTicket, error)
	Update(ctx context.Context, t *domain.SupportTicket) error
	Delete(ctx context.Context, id uuid.UUID) error
}
