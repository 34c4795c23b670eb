package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tablero/internal/domain"
)

// MockNotifier is a mock implementation of port.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendDispatchNotice(ctx context.Context, r *domain.Remito) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
