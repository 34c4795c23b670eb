package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"tablero/internal/domain"
)

// MockRemitoRepo is a mock implementation of port.RemitoRepository.
type MockRemitoRepo struct {
	mock.Mock
}

func (m *MockRemitoRepo) Create(ctx context.Context, r *domain.Remito) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRemitoRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Remito, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Remito), args.Error(1)
}

func (m *MockRemitoRepo) ListActive(ctx context.Context) ([]domain.Remito, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Remito), args.Error(1)
}

func (m *MockRemitoRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockRemitoRepo) MoveToHistory(ctx context.Context, r *domain.Remito) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRemitoRepo) ListHistory(ctx context.Context) ([]domain.Remito, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Remito), args.Error(1)
}

func (m *MockRemitoRepo) GetHistoryByID(ctx context.Context, id uuid.UUID) (*domain.Remito, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Remito), args.Error(1)
}

func (m *MockRemitoRepo) DeleteFromHistory(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
