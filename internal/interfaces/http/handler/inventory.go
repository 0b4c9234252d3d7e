package handler

import (
	invapp "github.com/fisherp/backend/internal/application/inventory"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InventoryHandler answers derived stock questions and records manual
// adjustments
type InventoryHandler struct {
	BaseHandler
	onHandService     *invapp.OnHandService
	adjustmentService *invapp.AdjustmentService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(onHandService *invapp.OnHandService, adjustmentService *invapp.AdjustmentService) *InventoryHandler {
	return &InventoryHandler{
		onHandService:     onHandService,
		adjustmentService: adjustmentService,
	}
}

// BatchOnHand returns the derived position of one batch
func (h *InventoryHandler) BatchOnHand(c *gin.Context) {
	batchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	onHand, err := h.onHandService.BatchOnHand(c.Request.Context(), batchID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, onHand)
}

// LineOnHand returns the derived position of one (batch, size) line
func (h *InventoryHandler) LineOnHand(c *gin.Context) {
	batchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}
	sizeID, err := uuid.Parse(c.Param("size_id"))
	if err != nil {
		h.BadRequest(c, "Invalid size ID format")
		return
	}

	onHand, err := h.onHandService.BatchLineOnHand(c.Request.Context(), batchID, sizeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, onHand)
}

// FIFOCandidates lists the open batches a FIFO sale of the given branch and
// size would draw from, oldest receipt first
func (h *InventoryHandler) FIFOCandidates(c *gin.Context) {
	branchID, err := uuid.Parse(c.Query("branch_id"))
	if err != nil {
		h.BadRequest(c, "Invalid branch ID format")
		return
	}
	sizeID, err := uuid.Parse(c.Query("size_id"))
	if err != nil {
		h.BadRequest(c, "Invalid size ID format")
		return
	}

	candidates, err := h.onHandService.FIFOCandidates(c.Request.Context(), branchID, sizeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, candidates)
}

// CreateAdjustment posts a signed manual correction against a batch
func (h *InventoryHandler) CreateAdjustment(c *gin.Context) {
	var req invapp.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	adjustment, err := h.adjustmentService.CreateAdjustment(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, adjustment)
}

// ListAdjustments lists the adjustments posted against one batch in
// timestamp order
func (h *InventoryHandler) ListAdjustments(c *gin.Context) {
	batchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	adjustments, err := h.adjustmentService.ListAdjustments(c.Request.Context(), batchID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, adjustments)
}
