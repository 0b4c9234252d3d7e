package inventory

import (
	"time"

	"github.com/fisherp/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchOnHandResponse is the derived stock position of a batch. A missing or
// unknown batch yields the zero position, not an error.
type BatchOnHandResponse struct {
	BatchID   uuid.UUID        `json:"batch_id"`
	BatchCode string           `json:"batch_code,omitempty"`
	OnHand    inventory.OnHand `json:"on_hand"`
}

// LineOnHandResponse is the derived stock position of one (batch, size) line.
// Adjustments carry no size attribution, so they are excluded here; the
// batch-level position is the reconciled one.
type LineOnHandResponse struct {
	BatchID uuid.UUID        `json:"batch_id"`
	SizeID  uuid.UUID        `json:"size_id"`
	OnHand  inventory.OnHand `json:"on_hand"`
}

// CreateAdjustmentRequest posts a signed manual correction against a batch
type CreateAdjustmentRequest struct {
	BatchID     uuid.UUID       `json:"batch_id" binding:"required"`
	Reason      string          `json:"reason" binding:"required"`
	PiecesDelta int             `json:"pieces_delta"`
	KgDelta     decimal.Decimal `json:"kg_delta"`
	Notes       string          `json:"notes"`
}

// AdjustmentResponse is the API representation of an inventory adjustment
type AdjustmentResponse struct {
	ID          uuid.UUID       `json:"id"`
	TS          time.Time       `json:"ts"`
	BatchID     uuid.UUID       `json:"batch_id"`
	Reason      string          `json:"reason"`
	PiecesDelta int             `json:"pieces_delta"`
	KgDelta     decimal.Decimal `json:"kg_delta"`
	Notes       string          `json:"notes,omitempty"`
}

// ToAdjustmentResponse converts an adjustment to its API representation
func ToAdjustmentResponse(a *inventory.InventoryAdjustment) AdjustmentResponse {
	return AdjustmentResponse{
		ID:          a.ID,
		TS:          a.TS,
		BatchID:     a.BatchID,
		Reason:      a.Reason,
		PiecesDelta: a.PiecesDelta,
		KgDelta:     a.KgDelta,
		Notes:       a.Notes,
	}
}
