package port

import (
	"context"

	"tablero/internal/domain"
)

// Notifier sends out-of-band notices about workflow transitions.
type Notifier interface {
	// SendDispatchNotice notifies logistics that a remito moved to
	// Despachado. A failed notice is logged, never surfaced: the
	// dispatch itself already happened.
	SendDispatchNotice(ctx context.Context, r *domain.Remito) error
}
