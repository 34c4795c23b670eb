package noop

import (
	"context"

	"github.com/rs/zerolog/log"

	"tablero/internal/domain"
	"tablero/internal/port"
)

type noopNotifier struct{}

// NewNoopNotifier creates a Notifier that only logs. Used when no email
// provider is configured.
func NewNoopNotifier() port.Notifier {
	return &noopNotifier{}
}

func (n *noopNotifier) SendDispatchNotice(_ context.Context, r *domain.Remito) error {
	log.Info().
		Str("remito", r.Number).
		Str("cliente", r.Client).
		Str("ventana", r.DispatchWindow).
		Msg("[NOOP] dispatch notice")
	return nil
}
