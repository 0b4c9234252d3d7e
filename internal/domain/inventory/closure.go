package inventory

import (
	"time"

	"github.com/fisherp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchClosure records the shrinkage reconciliation of one batch. Exactly one
// closure row exists per batch, created at the moment the batch transitions
// OPEN -> CLOSED.
type BatchClosure struct {
	shared.BaseEntity
	BatchID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	ClosedTS time.Time       `gorm:"column:closed_ts;not null"`
	LossKg   decimal.Decimal `gorm:"type:decimal(18,3);not null"`
	LossPct  decimal.Decimal `gorm:"type:decimal(9,4);not null"`
	Notes    string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (BatchClosure) TableName() string {
	return "batch_closures"
}

// NewBatchClosure creates the closure record for a batch
func NewBatchClosure(batchID uuid.UUID, at time.Time, lossKg, lossPct decimal.Decimal, notes string) (*BatchClosure, error) {
	if batchID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Batch ID cannot be empty")
	}
	return &BatchClosure{
		BaseEntity: shared.NewBaseEntity(),
		BatchID:    batchID,
		ClosedTS:   at,
		LossKg:     lossKg,
		LossPct:    lossPct,
		Notes:      notes,
	}, nil
}

// ComputeLoss derives shrinkage at closure: lossKg = initialKg - totalKgSold.
// The loss may be negative, signaling a counting anomaly; it is deliberately
// not clamped. lossPct is 100 * lossKg / initialKg with safe division.
func ComputeLoss(initialKg, totalKgSold decimal.Decimal) (lossKg, lossPct decimal.Decimal) {
	lossKg = initialKg.Sub(totalKgSold)
	if initialKg.IsZero() {
		return lossKg, decimal.Zero
	}
	lossPct = lossKg.Div(initialKg).Mul(decimal.NewFromInt(100))
	return lossKg, lossPct
}
