package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tablero/internal/domain"
	"tablero/internal/port"
	"tablero/internal/stream"
)

// CollectionMovements is the movements snapshot stream name.
const CollectionMovements = "movements"

// MovementPatch carries the transition toggles for a movement record.
// Nil pointers leave the field untouched.
type MovementPatch struct {
	Reconciled     *domain.ReconciledState `json:"reconciled"`
	SealedEnvelope *bool                   `json:"sealed_envelope"`
	Booked         *domain.BookedState     `json:"booked"`
}

// MovementService reconciles and books driver movement records.
type MovementService interface {
	List(ctx context.Context) ([]domain.Movement, error)
	Patch(ctx context.Context, id uuid.UUID, patch MovementPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type movementService struct {
	repo port.MovementRepository
	hub  *stream.Hub
}

// NewMovementService creates a new MovementService implementation.
func NewMovementService(repo port.MovementRepository, hub *stream.Hub) MovementService {
	return &movementService{repo: repo, hub: hub}
}

func (s *movementService) List(ctx context.Context) ([]domain.Movement, error) {
	return s.repo.List(ctx)
}

func (s *movementService) Patch(ctx context.Context, id uuid.UUID, patch MovementPatch) error {
	fields := make(map[string]interface{})

	if patch.Reconciled != nil {
		switch *patch.Reconciled {
		case domain.ReconciledAControlar, domain.ReconciledControlado:
			fields["reconciled"] = *patch.Reconciled
		default:
			return domain.ErrInvalidState
		}
	}
	if patch.SealedEnvelope != nil {
		fields["sealed_envelope"] = *patch.SealedEnvelope
	}
	if patch.Booked != nil {
		switch *patch.Booked {
		case domain.BookedNone, domain.BookedRegistrado:
			fields["booked"] = *patch.Booked
		default:
			return domain.ErrInvalidState
		}
	}

	if len(fields) == 0 {
		return nil
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return err
	}
	s.publish(ctx)
	return nil
}

func (s *movementService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx)
	return nil
}

func (s *movementService) publish(ctx context.Context) {
	movements, err := s.repo.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("movement snapshot refresh failed")
		return
	}
	s.hub.Publish(CollectionMovements, movements)
}
