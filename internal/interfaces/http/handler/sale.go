package handler

import (
	"strconv"

	salesapp "github.com/fisherp/backend/internal/application/sales"
	"github.com/gin-gonic/gin"
)

const defaultRecentSales = 50

// SaleHandler records sales and lists recent activity
type SaleHandler struct {
	BaseHandler
	saleService       *salesapp.SaleService
	allocationService *salesapp.AllocationService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService *salesapp.SaleService, allocationService *salesapp.AllocationService) *SaleHandler {
	return &SaleHandler{
		saleService:       saleService,
		allocationService: allocationService,
	}
}

// RecordRetail posts a retail sale against one known batch
func (h *SaleHandler) RecordRetail(c *gin.Context) {
	var req salesapp.RecordRetailSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.saleService.RecordRetailSale(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, sale)
}

// RecordWholesale posts a wholesale sale against one known batch
func (h *SaleHandler) RecordWholesale(c *gin.Context) {
	var req salesapp.RecordWholesaleSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.saleService.RecordWholesaleSale(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, sale)
}

// SellRetailFIFO sells pieces of a size at a branch, splitting the request
// across open batches oldest first
func (h *SaleHandler) SellRetailFIFO(c *gin.Context) {
	var req salesapp.FIFORetailSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sales, err := h.allocationService.SellRetailFIFO(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, sales)
}

// SellWholesaleFIFO sells kg of a size at a branch, splitting the request
// across open batches oldest first
func (h *SaleHandler) SellWholesaleFIFO(c *gin.Context) {
	var req salesapp.FIFOWholesaleSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sales, err := h.allocationService.SellWholesaleFIFO(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, sales)
}

// ListRecent lists the most recently posted sales
func (h *SaleHandler) ListRecent(c *gin.Context) {
	limit := defaultRecentSales
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	sales, err := h.saleService.ListRecentSales(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sales)
}
