package handler

import (
	closureapp "github.com/fisherp/backend/internal/application/closures"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClosureHandler closes depleted batches and serves their closure records
type ClosureHandler struct {
	BaseHandler
	closureService *closureapp.ClosureService
}

// NewClosureHandler creates a new ClosureHandler
func NewClosureHandler(closureService *closureapp.ClosureService) *ClosureHandler {
	return &ClosureHandler{
		closureService: closureService,
	}
}

type closeBatchBody struct {
	Notes string `json:"notes"`
}

// Close reconciles and closes the batch named in the path. The body carries
// optional closure notes only.
func (h *ClosureHandler) Close(c *gin.Context) {
	batchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	var body closeBatchBody
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	}

	closure, err := h.closureService.CloseBatch(c.Request.Context(), closureapp.CloseBatchRequest{
		BatchID: batchID,
		Notes:   body.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, closure)
}

// GetClosure returns the closure record of one batch
func (h *ClosureHandler) GetClosure(c *gin.Context) {
	batchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	closure, err := h.closureService.GetClosure(c.Request.Context(), batchID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, closure)
}
