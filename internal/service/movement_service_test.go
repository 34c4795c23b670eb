package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tablero/internal/domain"
	"tablero/internal/service"
	"tablero/internal/stream"
	"tablero/mocks"
)

func newMovementService(repo *mocks.MockMovementRepo) service.MovementService {
	return service.NewMovementService(repo, stream.NewHub())
}

func ptr[T any](v T) *T { return &v }

func TestMovementService_Patch(t *testing.T) {
	mockRepo := new(mocks.MockMovementRepo)
	svc := newMovementService(mockRepo)
	id := uuid.New()

	mockRepo.On("UpdateFields", mock.Anything, id, map[string]interface{}{
		"reconciled":      domain.ReconciledControlado,
		"sealed_envelope": true,
	}).Return(nil)
	mockRepo.On("List", mock.Anything).Return([]domain.Movement{}, nil)

	err := svc.Patch(context.Background(), id, service.MovementPatch{
		Reconciled:     ptr(domain.ReconciledControlado),
		SealedEnvelope: ptr(true),
	})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestMovementService_Patch_Booked(t *testing.T) {
	mockRepo := new(mocks.MockMovementRepo)
	svc := newMovementService(mockRepo)
	id := uuid.New()

	mockRepo.On("UpdateFields", mock.Anything, id, map[string]interface{}{
		"booked": domain.BookedRegistrado,
	}).Return(nil)
	mockRepo.On("List", mock.Anything).Return([]domain.Movement{}, nil)

	err := svc.Patch(context.Background(), id, service.MovementPatch{
		Booked: ptr(domain.BookedRegistrado),
	})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestMovementService_Patch_InvalidReconciled(t *testing.T) {
	mockRepo := new(mocks.MockMovementRepo)
	svc := newMovementService(mockRepo)

	err := svc.Patch(context.Background(), uuid.New(), service.MovementPatch{
		Reconciled: ptr(domain.ReconciledState("Revisado")),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	mockRepo.AssertNotCalled(t, "UpdateFields")
}

func TestMovementService_Patch_Empty(t *testing.T) {
	mockRepo := new(mocks.MockMovementRepo)
	svc := newMovementService(mockRepo)

	err := svc.Patch(context.Background(), uuid.New(), service.MovementPatch{})

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "UpdateFields")
}

func TestMovementService_Delete(t *testing.T) {
	mockRepo := new(mocks.MockMovementRepo)
	svc := newMovementService(mockRepo)
	id := uuid.New()

	mockRepo.On("Delete", mock.Anything, id).Return(nil)
	mockRepo.On("List", mock.Anything).Return([]domain.Movement{}, nil)

	err := svc.Delete(context.Background(), id)

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
