package inventory

import (
	"time"

	"github.com/fisherp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Adjustment reasons
const (
	// AdjustmentReasonCloseToZero is the auto-posted reconciliation that
	// zeroes residual kg within tolerance at batch closure
	AdjustmentReasonCloseToZero = "CLOSE_TO_ZERO"
	// AdjustmentReasonStocktake records a physical count correction
	AdjustmentReasonStocktake = "STOCKTAKE"
	// AdjustmentReasonWriteOff records spoiled or discarded stock
	AdjustmentReasonWriteOff = "WRITE_OFF"
)

// InventoryAdjustment is an append-only, signed correction against a batch.
// Adjustments never overwrite the batch's initial figures; they participate
// in the derived on-hand fold alongside sales. Adjustments carry no size
// attribution, so they apply at batch granularity only.
type InventoryAdjustment struct {
	shared.BaseEntity
	TS          time.Time       `gorm:"column:ts;not null;index"`
	BatchID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Reason      string          `gorm:"type:varchar(50);not null"`
	PiecesDelta int             `gorm:"not null"`
	KgDelta     decimal.Decimal `gorm:"type:decimal(18,3);not null"`
	Notes       string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (InventoryAdjustment) TableName() string {
	return "inventory_adjustments"
}

// NewInventoryAdjustment creates a new adjustment record
func NewInventoryAdjustment(
	batchID uuid.UUID,
	reason string,
	piecesDelta int,
	kgDelta decimal.Decimal,
	notes string,
	at time.Time,
) (*InventoryAdjustment, error) {
	if batchID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Batch ID cannot be empty")
	}
	if reason == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Adjustment reason is required")
	}
	if piecesDelta == 0 && kgDelta.IsZero() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Adjustment must move pieces or kg")
	}
	return &InventoryAdjustment{
		BaseEntity:  shared.NewBaseEntity(),
		TS:          at,
		BatchID:     batchID,
		Reason:      reason,
		PiecesDelta: piecesDelta,
		KgDelta:     kgDelta,
		Notes:       notes,
	}, nil
}
