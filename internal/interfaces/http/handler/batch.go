package handler

import (
	batchapp "github.com/fisherp/backend/internal/application/batches"
	"github.com/fisherp/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BatchHandler handles batch-related API endpoints
type BatchHandler struct {
	BaseHandler
	batchService *batchapp.BatchService
}

// NewBatchHandler creates a new BatchHandler
func NewBatchHandler(batchService *batchapp.BatchService) *BatchHandler {
	return &BatchHandler{
		batchService: batchService,
	}
}

// Create creates a single batch with an explicit batch code
func (h *BatchHandler) Create(c *gin.Context) {
	var req batchapp.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	batch, err := h.batchService.CreateBatch(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, batch)
}

// CreatePurchase records a purchase intake, creating one batch per
// non-empty line with a generated batch code
func (h *BatchHandler) CreatePurchase(c *gin.Context) {
	var req batchapp.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	created, err := h.batchService.CreateBatchesFromPurchase(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, created)
}

// ListOpen lists open batches with pagination
func (h *BatchHandler) ListOpen(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.batchService.ListOpenBatches(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetByID returns one batch with its size lines
func (h *BatchHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	batch, err := h.batchService.GetBatch(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, batch)
}

// GetByCode returns one batch looked up by its batch code
func (h *BatchHandler) GetByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		h.BadRequest(c, "Batch code is required")
		return
	}

	batch, err := h.batchService.GetBatchByCode(c.Request.Context(), code)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, batch)
}
