package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tablero/internal/domain"
	"tablero/internal/port"
	"tablero/internal/stream"
)

// CollectionTickets is the support-ticket snapshot stream name.
const CollectionTickets = "tickets"

// CreateTicketInput is the DTO for new support tickets.
type CreateTicketInput struct {
	Number string   `json:"number"`
	Client string   `json:"client"`
	Date   string   `json:"date"`
	Items  []string `json:"items"`
}

// UpdateTicketInput carries editable ticket fields. Nil pointers leave
// the field untouched.
type UpdateTicketInput struct {
	Number          *string   `json:"number"`
	Client          *string   `json:"client"`
	Date            *string   `json:"date"`
	Items           *[]string `json:"items"`
	WorkDescription *string   `json:"work_description"`
}

// TicketService is the support-ticket workflow.
type TicketService interface {
	Create(ctx context.Context, input CreateTicketInput) (*domain.SupportTicket, error)
	List(ctx context.Context) ([]domain.SupportTicket, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTicketInput) (*domain.SupportTicket, error)
	SetState(ctx context.Context, id uuid.UUID, state domain.TicketState) (*domain.SupportTicket, error)
	SetWindow(ctx context.Context, id uuid.UUID, window string) (*domain.SupportTicket, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ticketService struct {
	repo port.TicketRepository
	hub  *stream.Hub
}

// NewTicketService creates a new TicketService implementation.
func NewTicketService(repo port.TicketRepository, hub *stream.Hub) TicketService {
	return &ticketService{repo: repo, hub: hub}
}

func (s *ticketService) Create(ctx context.Context, input CreateTicketInput) (*domain.SupportTicket, error) {
	t := &domain.SupportTicket{
		ID:     uuid.New(),
		Number: input.Number,
		Client: input.Client,
		Date:   input.Date,
		Items:  domain.StringList(input.Items),
		State:  domain.TicketPendiente,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	s.publish(ctx)
	return t, nil
}

func (s *ticketService) List(ctx context.Context) ([]domain.SupportTicket, error) {
	return s.repo.List(ctx)
}

func (s *ticketService) Update(ctx context.Context, id uuid.UUID, input UpdateTicketInput) (*domain.SupportTicket, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Number != nil {
		t.Number = *input.Number
	}
	if input.Client != nil {
		t.Client = *input.Client
	}
	if input.Date != nil {
		t.Date = *input.Date
	}
	if input.Items != nil {
		t.Items = domain.StringList(*input.Items)
	}
	if input.WorkDescription != nil {
		t.WorkDescription = *input.WorkDescription
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	s.publish(ctx)
	return t, nil
}

// SetState transitions the ticket. Toggling a resolved ticket back to
// Pendiente clears its delivery window in the same write: the slot was
// granted on resolution and is forfeited with it.
func (s *ticketService) SetState(ctx context.Context, id uuid.UUID, state domain.TicketState) (*domain.SupportTicket, error) {
	switch state {
	case domain.TicketPendiente, domain.TicketEnProgreso, domain.TicketResuelto, domain.TicketEntregado:
	default:
		return nil, domain.ErrInvalidState
	}

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if t.State == domain.TicketResuelto && state == domain.TicketPendiente {
		t.DeliveryWindow = ""
	}
	t.State = state

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	s.publish(ctx)
	return t, nil
}

// SetWindow assigns a delivery slot. Only resolved tickets can be
// scheduled.
func (s *ticketService) SetWindow(ctx context.Context, id uuid.UUID, window string) (*domain.SupportTicket, error) {
	if !domain.ValidDispatchWindow(window) {
		return nil, domain.ErrInvalidWindow
	}

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.State != domain.TicketResuelto {
		return nil, domain.ErrWindowNotAllowed
	}

	t.DeliveryWindow = window
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	s.publish(ctx)
	return t, nil
}

func (s *ticketService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx)
	return nil
}

func (s *ticketService) publish(ctx context.Context) {
	tickets, err := s.repo.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("ticket snapshot refresh failed")
		return
	}
	s.hub.Publish(CollectionTickets, tickets)
}
