package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tablero/internal/service"
)

const defaultTopN = 10

// ReportHandler handles aggregate report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Categories handles GET /api/v1/reports/categories
func (h *ReportHandler) Categories(c *gin.Context) {
	tally, err := h.reportService.Categories(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tally)
}

// Monthly handles GET /api/v1/reports/monthly
func (h *ReportHandler) Monthly(c *gin.Context) {
	counts, err := h.reportService.Monthly(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, counts)
}

// Weekdays handles GET /api/v1/reports/weekdays
func (h *ReportHandler) Weekdays(c *gin.Context) {
	counts, err := h.reportService.Weekdays(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, counts)
}

// TopProducts handles GET /api/v1/reports/top-products?n=10
func (h *ReportHandler) TopProducts(c *gin.Context) {
	counts, err := h.reportService.TopProducts(c.Request.Context(), topN(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, counts)
}

// TopClients handles GET /api/v1/reports/top-clients?n=10
func (h *ReportHandler) TopClients(c *gin.Context) {
	counts, err := h.reportService.TopClients(c.Request.Context(), topN(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, counts)
}

func topN(c *gin.Context) int {
	n, err := strconv.Atoi(c.DefaultQuery("n", strconv.Itoa(defaultTopN)))
	if err != nil || n <= 0 {
		return defaultTopN
	}
	return n
}
