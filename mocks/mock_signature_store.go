package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockSignatureStore is a mock implementation of port.SignatureStore.
type MockSignatureStore struct {
	mock.Mock
}

func (m *MockSignatureStore) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	args := m.Called(ctx, key, contentType, body)
	return args.Error(0)
}

func (m *MockSignatureStore) PresignedURL(ctx context.Context, key string, expirySeconds int64) (string, error) {
	args := m.Called(ctx, key, expirySeconds)
	return args.String(0), args.Error(1)
}

func (m *MockSignatureStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
