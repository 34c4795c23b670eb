package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"tablero/internal/domain"
)

// MockTicketRepo is a mock implementation of port.TicketRepository.
type MockTicketRepo struct {
	mock.Mock
}

func (m *MockTicketRepo) Create(ctx context.Context, t *domain.SupportTicket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTicketRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SupportTicket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupportTicket), args.Error(1)
}

func (m *MockTicketRepo) List(ctx context.Context) ([]domain.SupportTicket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupportTicket), args.Error(1)
}

func (m *MockTicketRepo) Update(ctx context.Context, t *domain.SupportTicket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTicketRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
