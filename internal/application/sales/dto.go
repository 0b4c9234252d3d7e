package sales

import (
	"time"

	"github.com/fisherp/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordRetailSaleRequest posts a retail sale against one known batch.
// The clerk counts pieces; kg is derived from the batch fingerprint.
type RecordRetailSaleRequest struct {
	BranchID   uuid.UUID        `json:"branch_id" binding:"required"`
	BatchID    uuid.UUID        `json:"batch_id" binding:"required"`
	SizeID     *uuid.UUID       `json:"size_id"`
	Customer   string           `json:"customer"`
	Pieces     int              `json:"pieces" binding:"required"`
	UnitPrice  *decimal.Decimal `json:"unit_price"`
	PriceBasis string           `json:"price_basis"`
	TotalPrice *decimal.Decimal `json:"total_price"`
}

// RecordWholesaleSaleRequest posts a wholesale sale against one known batch.
// The scale reads kg; the clerk confirms a piece count.
type RecordWholesaleSaleRequest struct {
	BranchID      uuid.UUID        `json:"branch_id" binding:"required"`
	BatchID       uuid.UUID        `json:"batch_id" binding:"required"`
	SizeID        *uuid.UUID       `json:"size_id"`
	Customer      string           `json:"customer"`
	Kg            decimal.Decimal  `json:"kg" binding:"required"`
	PiecesCounted int              `json:"pieces_counted" binding:"required"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	PriceBasis    string           `json:"price_basis"`
	TotalPrice    *decimal.Decimal `json:"total_price"`
}

// FIFORetailSaleRequest sells pieces of a size at a branch without naming a
// batch; the allocator splits the request across open batches, oldest first.
type FIFORetailSaleRequest struct {
	BranchID   uuid.UUID        `json:"branch_id" binding:"required"`
	SizeID     uuid.UUID        `json:"size_id" binding:"required"`
	Customer   string           `json:"customer"`
	Pieces     int              `json:"pieces" binding:"required"`
	UnitPrice  *decimal.Decimal `json:"unit_price"`
	PriceBasis string           `json:"price_basis"`
}

// FIFOWholesaleSaleRequest sells kg of a size at a branch without naming a
// batch; counted pieces are distributed over the batches actually used.
type FIFOWholesaleSaleRequest struct {
	BranchID      uuid.UUID        `json:"branch_id" binding:"required"`
	SizeID        uuid.UUID        `json:"size_id" binding:"required"`
	Customer      string           `json:"customer"`
	Kg            decimal.Decimal  `json:"kg" binding:"required"`
	PiecesCounted int              `json:"pieces_counted" binding:"required"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	PriceBasis    string           `json:"price_basis"`
}

// SaleResponse is the API representation of a posted sale row
type SaleResponse struct {
	ID              uuid.UUID        `json:"id"`
	SaleTS          time.Time        `json:"sale_ts"`
	BranchID        uuid.UUID        `json:"branch_id"`
	Mode            string           `json:"mode"`
	Customer        string           `json:"customer,omitempty"`
	BatchID         uuid.UUID        `json:"batch_id"`
	SizeID          *uuid.UUID       `json:"size_id,omitempty"`
	PiecesSold      int              `json:"pieces_sold"`
	KgSold          decimal.Decimal  `json:"kg_sold"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	PriceBasis      string           `json:"price_basis"`
	TotalPrice      *decimal.Decimal `json:"total_price,omitempty"`
	PiecesSuggested *int             `json:"pieces_suggested,omitempty"`
	VarianceFlagged bool             `json:"variance_flagged"`
}

// ToSaleResponse converts a sale row to its API representation
func ToSaleResponse(s *inventory.Sale) SaleResponse {
	return SaleResponse{
		ID:              s.ID,
		SaleTS:          s.SaleTS,
		BranchID:        s.BranchID,
		Mode:            s.Mode.String(),
		Customer:        s.Customer,
		BatchID:         s.BatchID,
		SizeID:          s.SizeID,
		PiecesSold:      s.PiecesSold,
		KgSold:          s.KgSold,
		UnitPrice:       s.UnitPrice,
		PriceBasis:      string(s.PriceBasis),
		TotalPrice:      s.TotalPrice,
		PiecesSuggested: s.PiecesSuggested,
		VarianceFlagged: s.VarianceFlagged,
	}
}
