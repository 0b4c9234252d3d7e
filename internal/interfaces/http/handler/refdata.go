package handler

import (
	refapp "github.com/fisherp/backend/internal/application/refdata"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RefDataHandler serves the static reference data: branches and size grades
type RefDataHandler struct {
	BaseHandler
	refDataService *refapp.RefDataService
}

// NewRefDataHandler creates a new RefDataHandler
func NewRefDataHandler(refDataService *refapp.RefDataService) *RefDataHandler {
	return &RefDataHandler{
		refDataService: refDataService,
	}
}

// CreateBranch creates a new branch
func (h *RefDataHandler) CreateBranch(c *gin.Context) {
	var req refapp.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	branch, err := h.refDataService.CreateBranch(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, branch)
}

// GetBranch returns one branch by ID
func (h *RefDataHandler) GetBranch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid branch ID format")
		return
	}

	branch, err := h.refDataService.GetBranch(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, branch)
}

// ListBranches lists all branches ordered by name
func (h *RefDataHandler) ListBranches(c *gin.Context) {
	branches, err := h.refDataService.ListBranches(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, branches)
}

// CreateSize creates a new size grade
func (h *RefDataHandler) CreateSize(c *gin.Context) {
	var req refapp.CreateSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	size, err := h.refDataService.CreateSize(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, size)
}

// GetSize returns one size grade by ID
func (h *RefDataHandler) GetSize(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid size ID format")
		return
	}

	size, err := h.refDataService.GetSize(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, size)
}

// ListSizes lists all size grades in display order
func (h *RefDataHandler) ListSizes(c *gin.Context) {
	sizes, err := h.refDataService.ListSizes(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sizes)
}
