package handlers

import (
	"net/http"

	portssvc "github.com/fiscly/fiscly_backend/internal/core/ports/services"
	"github.com/fiscly/fiscly_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to invoice reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// RegisterReportingRoutes registers routes related to reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &reportingHandler{reportingService: reportingService}
	rg.GET("/reports", h.getInvoiceReport)
}

// getInvoiceReport godoc
// @Summary Invoice totals in USD
// @Description Sums the caller's converted invoices: revenue, paid and outstanding in USD, plus per-status and per-currency breakdowns
// @Tags reports
// @Produce json
// @Success 200 {object} dto.InvoiceReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Workspace not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports [get]
func (h *reportingHandler) getInvoiceReport(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	report, err := h.reportingService.InvoiceReport(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceReportResponse(report))
}
