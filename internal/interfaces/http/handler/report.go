package handler

import (
	reportapp "github.com/fisherp/backend/internal/application/report"
	"github.com/fisherp/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves the read-only reporting projections
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// InventorySummary returns the stock position and value across open batches
func (h *ReportHandler) InventorySummary(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	summary, err := h.reportService.InventorySummary(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// SalesReport aggregates the sales of a date window. The upper bound is
// exclusive, so from=2026-02-01&to=2026-03-01 covers February.
func (h *ReportHandler) SalesReport(c *gin.Context) {
	var req dto.DateRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if !req.To.After(req.From) {
		h.BadRequest(c, "Report window must end after it starts")
		return
	}

	report, err := h.reportService.SalesReport(c.Request.Context(), req.From, req.To)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}

// LossReport aggregates recorded shrinkage across closed batches
func (h *ReportHandler) LossReport(c *gin.Context) {
	report, err := h.reportService.LossReport(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}
