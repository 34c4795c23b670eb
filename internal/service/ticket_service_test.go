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

func newTicketService(repo *mocks.MockTicketRepo) service.TicketService {
	return service.NewTicketService(repo, stream.NewHub())
}

func TestTicketService_Create(t *testing.T) {
	mockRepo := new(mocks.MockTicketRepo)
	svc := newTicketService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.SupportTicket")).Return(nil)
	mockRepo.On("List", mock.Anything).Return([]domain.SupportTicket{}, nil)

	ticket, err := svc.Create(context.Background(), service.CreateTicketInput{
		Number: "T-001",
		Client: "ACME SA",
		Date:   "05/06/24",
		Items:  []string{"cambio de cadena"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TicketPendiente, ticket.State)
	assert.Empty(t, ticket.DeliveryWindow)
	assert.NotEqual(t, uuid.Nil, ticket.ID)
	mockRepo.AssertExpectations(t)
}

func TestTicketService_SetState_ResueltoBackToPendienteClearsWindow(t *testing.T) {
	mockRepo := new(mocks.MockTicketRepo)
	svc := newTicketService(mockRepo)

	id := uuid.New()
	existing := &domain.SupportTicket{
		ID:             id,
		State:          domain.TicketResuelto,
		DeliveryWindow: "Lunes Mañana",
	}
	mockRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(tk *domain.SupportTicket) bool {
		return tk.State == domain.TicketPendiente && tk.DeliveryWindow == ""
	})).Return(nil)
	mockRepo.On("List", mock.Anything).Return([]domain.SupportTicket{}, nil)

	ticket, err := svc.SetState(context.Background(), id, domain.TicketPendiente)

	require.NoError(t, err)
	assert.Equal(t, domain.TicketPendiente, ticket.State)
	assert.Empty(t, ticket.DeliveryWindow)
	mockRepo.AssertExpectations(t)
}

func TestTicketService_SetState_OtherTransitionsKeepWindow(t *testing.T) {
	mockRepo := new(mocks.MockTicketRepo)
	svc := newTicketService(mockRepo)

	id := uuid.New()
	existing := &domain.SupportTicket{
		ID:             id,
		State:          domain.TicketResuelto,
		DeliveryWindow: "Lunes Mañana",
	}
	mockRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.SupportTicket")).Return(nil)
	mockRepo.On("List", mock.Anything).Return([]domain.SupportTicket{}, nil)

	ticket, err := svc.SetState(context.Background(), id, domain.TicketEntregado)

	require.NoError(t, err)
	assert.Equal(t, "Lunes Mañana", ticket.DeliveryWindow)
	mockRepo.AssertExpectations(t)
}

func TestTicketService_SetState_InvalidState(t *testing.T) {
	mockRepo := new(mocks.MockTicketRepo)
	svc := newTicketService(mockRepo)

	_, err := svc.SetState(context.Background(), uuid.New(), "Perdido")

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestTicketService_SetWindow_RequiresResuelto(t *testing.T) {
	mockRepo := new(mocks.MockTicketRepo)
	svc := newTicketService(mockRepo)

	id := uuid.New()
	existing := &domain.SupportTicket{ID: id, State: domain.TicketEnProgreso}
	mockRepo.On("GetByID", mock.Anything, id).Return(existing, nil)

	_, err := svc.SetWindow(context.Background(), id, "Lunes Mañana")

	assert.ErrorIs(t, err, domain.ErrWindowNotAllowed)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestTicketService_SetWindow_Resuelto(t *testing.T) {
	mockRepo := new(mocks.MockTicketRepo)
	svc := newTicketService(mockRepo)

	id := uuid.New()
	existing := &domain.SupportTicket{ID: id, State: domain.TicketResuelto}
	mockRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(tk *domain.SupportTicket) bool {
		return tk.DeliveryWindow == "Martes Tarde"
	})).Return(nil)
	mockRepo.On("List", mock.Anything).Return([]domain.SupportTicket{}, nil)

	ticket, err := svc.SetWindow(context.Background(), id, "Martes Tarde")

	require.NoError(t, err)
	assert.Equal(t, "Martes Tarde", ticket.DeliveryWindow)
	mockRepo.AssertExpectations(t)
}

func TestTicketService_SetWindow_InvalidSlot(t *testing.T) {
	mockRepo := new(mocks.MockTicketRepo)
	svc := newTicketService(mockRepo)

	_, err := svc.SetWindow(context.Background(), uuid.New(), "Domingo Noche")

	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
	mockRepo.AssertNotCalled(t, "GetByID")
}

func TestTicketService_Update_PartialFields(t *testing.T) {
	mockRepo := new(mocks.MockTicketRepo)
	svc := newTicketService(mockRepo)

	id := uuid.New()
	existing := &domain.SupportTicket{ID: id, Number: "T-001", Client: "ACME SA"}
	mockRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.SupportTicket")).Return(nil)
	mockRepo.On("List", mock.Anything).Return([]domain.SupportTicket{}, nil)

	desc := "se cambió la cadena"
	ticket, err := svc.Update(context.Background(), id, service.UpdateTicketInput{WorkDescription: &desc})

	require.NoError(t, err)
	assert.Equal(t, desc, ticket.WorkDescription)
	assert.Equal(t, "ACME SA", ticket.Client)
	mockRepo.AssertExpectations(t)
}
