package batches

import (
	"time"

	"github.com/fisherp/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchLineRequest is one size line of a new batch
type BatchLineRequest struct {
	SizeID uuid.UUID       `json:"size_id" binding:"required"`
	Pieces int             `json:"pieces" binding:"required"`
	Kg     decimal.Decimal `json:"kg" binding:"required"`
}

// CreateBatchRequest creates one batch with an explicit batch code
type CreateBatchRequest struct {
	BatchCode     string             `json:"batch_code" binding:"required"`
	ReceiptDate   time.Time          `json:"receipt_date" binding:"required"`
	BranchID      uuid.UUID          `json:"branch_id" binding:"required"`
	Supplier      string             `json:"supplier"`
	Notes         string             `json:"notes"`
	BuyPricePerKg decimal.Decimal    `json:"buy_price_per_kg" binding:"required"`
	Lines         []BatchLineRequest `json:"lines" binding:"required"`
}

// PurchaseLineRequest is one size line of a purchase intake. Each line with
// positive quantities becomes its own batch.
type PurchaseLineRequest struct {
	SizeID        uuid.UUID       `json:"size_id" binding:"required"`
	Pieces        int             `json:"pieces"`
	Kg            decimal.Decimal `json:"kg"`
	BuyPricePerKg decimal.Decimal `json:"buy_price_per_kg" binding:"required"`
}

// CreatePurchaseRequest records a purchase intake: one generated-code batch
// per non-empty line
type CreatePurchaseRequest struct {
	ReceiptDate time.Time             `json:"receipt_date" binding:"required"`
	BranchID    uuid.UUID             `json:"branch_id" binding:"required"`
	Supplier    string                `json:"supplier"`
	Notes       string                `json:"notes"`
	Lines       []PurchaseLineRequest `json:"lines" binding:"required"`
}

// BatchLineResponse is the API representation of a batch line
type BatchLineResponse struct {
	ID            uuid.UUID       `json:"id"`
	SizeID        uuid.UUID       `json:"size_id"`
	Pieces        int             `json:"pieces"`
	Kg            decimal.Decimal `json:"kg"`
	AvgKgPerPiece decimal.Decimal `json:"avg_kg_per_piece"`
}

// BatchResponse is the API representation of a batch
type BatchResponse struct {
	ID            uuid.UUID           `json:"id"`
	BatchCode     string              `json:"batch_code"`
	ReceiptDate   time.Time           `json:"receipt_date"`
	BranchID      uuid.UUID           `json:"branch_id"`
	Supplier      string              `json:"supplier,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	BuyPricePerKg decimal.Decimal     `json:"buy_price_per_kg"`
	InitialPieces int                 `json:"initial_pieces"`
	InitialKg     decimal.Decimal     `json:"initial_kg"`
	AvgKgPerPiece decimal.Decimal     `json:"avg_kg_per_piece"`
	Status        string              `json:"status"`
	ClosedAt      *time.Time          `json:"closed_at,omitempty"`
	Lines         []BatchLineResponse `json:"lines"`
	CreatedAt     time.Time           `json:"created_at"`
}

// ToBatchResponse converts a batch aggregate to its API representation
func ToBatchResponse(b *inventory.Batch) BatchResponse {
	lines := make([]BatchLineResponse, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, BatchLineResponse{
			ID:            l.ID,
			SizeID:        l.SizeID,
			Pieces:        l.Pieces,
			Kg:            l.Kg,
			AvgKgPerPiece: l.AvgKgPerPiece,
		})
	}
	return BatchResponse{
		ID:            b.ID,
		BatchCode:     b.BatchCode,
		ReceiptDate:   b.ReceiptDate,
		BranchID:      b.BranchID,
		Supplier:      b.Supplier,
		Notes:         b.Notes,
		BuyPricePerKg: b.BuyPricePerKg,
		InitialPieces: b.InitialPieces,
		InitialKg:     b.InitialKg,
		AvgKgPerPiece: b.AvgKgPerPiece,
		Status:        b.Status.String(),
		ClosedAt:      b.ClosedAt,
		Lines:         lines,
		CreatedAt:     b.CreatedAt,
	}
}
