package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tablero/internal/domain"
	"tablero/internal/service"
)

// RemitoHandler handles delivery-note endpoints.
type RemitoHandler struct {
	remitoService service.RemitoService
}

// NewRemitoHandler creates a new RemitoHandler.
func NewRemitoHandler(remitoService service.RemitoService) *RemitoHandler {
	return &RemitoHandler{remitoService: remitoService}
}

// ParseInput carries the three pasted text blocks of a remito.
type ParseInput struct {
	Header      string `json:"header"`
	Lines       string `json:"lines"`
	Annotations string `json:"annotations"`
}

// Parse handles POST /api/v1/remitos/parse
func (h *RemitoHandler) Parse(c *gin.Context) {
	var input ParseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	draft := h.remitoService.ParseBlock(input.Header, input.Lines, input.Annotations)
	RespondOK(c, draft)
}

// Create handles POST /api/v1/remitos
func (h *RemitoHandler) Create(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateRemitoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	remito, err := h.remitoService.Create(c.Request.Context(), input, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, remito)
}

// List handles GET /api/v1/remitos
func (h *RemitoHandler) List(c *gin.Context) {
	remitos, err := h.remitoService.ListActive(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, remitos)
}

// Patch handles PATCH /api/v1/remitos/:id
func (h *RemitoHandler) Patch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid remito id")
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if len(fields) == 0 {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "no fields to update")
		return
	}

	if err := h.remitoService.UpdateFields(c.Request.Context(), id, fields); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"updated": true})
}

// Deliver handles POST /api/v1/remitos/:id/proof
// Accepts a multipart form with signer_name, signer_id, and an optional
// signature image file.
func (h *RemitoHandler) Deliver(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid remito id")
		return
	}

	input := service.DeliverInput{
		SignerName: c.PostForm("signer_name"),
		SignerID:   c.PostForm("signer_id"),
	}
	if input.SignerName == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "signer_name is required")
		return
	}

	if fileHeader, err := c.FormFile("signature"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "cannot read signature file")
			return
		}
		defer file.Close()
		input.Signature = file
		input.SignatureType = fileHeader.Header.Get("Content-Type")
	}

	if err := h.remitoService.Deliver(c.Request.Context(), id, input); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"delivered": true})
}

// RejectInput carries the rejected items recorded on delivery.
type RejectInput struct {
	Items []domain.RejectedItem `json:"items"`
}

// Reject handles POST /api/v1/remitos/:id/reject
func (h *RemitoHandler) Reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid remito id")
		return
	}

	var input RejectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.remitoService.RejectItems(c.Request.Context(), id, input.Items); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"updated": true})
}

// History handles GET /api/v1/remitos/history
func (h *RemitoHandler) History(c *gin.Context) {
	remitos, err := h.remitoService.History(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, remitos)
}

// HistoryDetail handles GET /api/v1/remitos/history/:id
// Returns the delivered record with a short-lived URL for the
// signature image when one was captured.
func (h *RemitoHandler) HistoryDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid remito id")
		return
	}

	view, err := h.remitoService.HistoryDetail(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, view)
}

// DeleteFromHistory handles DELETE /api/v1/remitos/history/:id
func (h *RemitoHandler) DeleteFromHistory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid remito id")
		return
	}

	if err := h.remitoService.DeleteFromHistory(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}

// ExportHistory handles GET /api/v1/remitos/history/export
// Streams the delivered history as an XLSX workbook.
func (h *RemitoHandler) ExportHistory(c *gin.Context) {
	// The workbook is built before any header is written; a failure
	// answers with the plain JSON error envelope.
	var buf bytes.Buffer
	if err := h.remitoService.ExportHistory(c.Request.Context(), &buf); err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("entregados_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
