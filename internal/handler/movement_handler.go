package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tablero/internal/service"
)

// MovementHandler handles payment and pickup reconciliation endpoints.
type MovementHandler struct {
	movementService service.MovementService
}

// NewMovementHandler creates a new MovementHandler.
func NewMovementHandler(movementService service.MovementService) *MovementHandler {
	return &MovementHandler{movementService: movementService}
}

// List handles GET /api/v1/movements
func (h *MovementHandler) List(c *gin.Context) {
	movements, err := h.movementService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, movements)
}

// Patch handles PATCH /api/v1/movements/:id
func (h *MovementHandler) Patch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid movement id")
		return
	}

	var patch service.MovementPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.movementService.Patch(c.Request.Context(), id, patch); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"updated": true})
}

// Delete handles DELETE /api/v1/movements/:id
func (h *MovementHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid movement id")
		return
	}

	if err := h.movementService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
