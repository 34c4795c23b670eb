package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tablero/internal/domain"
	"tablero/internal/service"
)

// TicketHandler handles support-ticket endpoints.
type TicketHandler struct {
	ticketService service.TicketService
}

// NewTicketHandler creates a new TicketHandler.
func NewTicketHandler(ticketService service.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// Create handles POST /api/v1/tickets
func (h *TicketHandler) Create(c *gin.Context) {
	var input service.CreateTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	ticket, err := h.ticketService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, ticket)
}

// List handles GET /api/v1/tickets
func (h *TicketHandler) List(c *gin.Context) {
	tickets, err := h.ticketService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tickets)
}

// Update handles PATCH /api/v1/tickets/:id
func (h *TicketHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid ticket id")
		return
	}

	var input service.UpdateTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	ticket, err := h.ticketService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ticket)
}

// StateInput carries a ticket state transition.
type StateInput struct {
	State string `json:"state"`
}

// SetState handles PUT /api/v1/tickets/:id/state
func (h *TicketHandler) SetState(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid ticket id")
		return
	}

	var input StateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	ticket, err := h.ticketService.SetState(c.Request.Context(), id, domain.TicketState(input.State))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ticket)
}

// WindowInput carries a delivery-window assignment.
type WindowInput struct {
	Window string `json:"window"`
}

// SetWindow handles PUT /api/v1/tickets/:id/window
func (h *TicketHandler) SetWindow(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid ticket id")
		return
	}

	var input WindowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	ticket, err := h.ticketService.SetWindow(c.Request.Context(), id, input.Window)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ticket)
}

// Delete handles DELETE /api/v1/tickets/:id
func (h *TicketHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid ticket id")
		return
	}

	if err := h.ticketService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
