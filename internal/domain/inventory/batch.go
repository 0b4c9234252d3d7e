package inventory

import (
	"strings"
	"time"

	"github.com/fisherp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchStatus represents the lifecycle status of a batch
type BatchStatus string

const (
	// BatchStatusOpen means the batch can still receive sales and adjustments
	BatchStatusOpen BatchStatus = "OPEN"
	// BatchStatusClosed is terminal; a closed batch accepts no further movements
	BatchStatusClosed BatchStatus = "CLOSED"
)

// String returns the string representation of BatchStatus
func (s BatchStatus) String() string {
	return string(s)
}

// Batch represents one fish receipt. It is the aggregate root for inventory
// accounting: sales and adjustments reference it, and on-hand stock is always
// derived from its initial figures plus those movements, never stored.
//
// AvgKgPerPiece is the batch fingerprint (initial kg / initial pieces),
// frozen at creation. It never changes, regardless of later movements.
type Batch struct {
	shared.BaseEntity
	BatchCode     string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	ReceiptDate   time.Time       `gorm:"type:date;not null;index"`
	BranchID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Supplier      string          `gorm:"type:varchar(200)"`
	Notes         string          `gorm:"type:text"`
	BuyPricePerKg decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	InitialPieces int             `gorm:"not null"`
	InitialKg     decimal.Decimal `gorm:"type:decimal(18,3);not null"`
	AvgKgPerPiece decimal.Decimal `gorm:"type:decimal(18,6);not null"`
	Status        BatchStatus     `gorm:"type:varchar(20);not null;default:'OPEN'"`
	ClosedAt      *time.Time

	// Lines are child entities of the Batch aggregate and have no
	// independent repository; they are persisted with the batch.
	Lines []BatchLine `gorm:"foreignKey:BatchID;references:ID"`
}

// TableName returns the table name for GORM
func (Batch) TableName() string {
	return "batches"
}

// LineInput carries one size line of a new batch
type LineInput struct {
	SizeID uuid.UUID
	Pieces int
	Kg     decimal.Decimal
}

// NewBatch creates a new open batch with its size lines.
// The batch average and every per-line average are computed here and frozen.
func NewBatch(
	batchCode string,
	receiptDate time.Time,
	branchID uuid.UUID,
	supplier, notes string,
	buyPricePerKg decimal.Decimal,
	lines []LineInput,
) (*Batch, error) {
	batchCode = strings.TrimSpace(batchCode)
	if batchCode == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Batch code is required")
	}
	if branchID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Branch ID cannot be empty")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("INVALID_LINES", "At least one size line is required")
	}
	if buyPricePerKg.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_PRICE", "Buy price per kg must be positive")
	}

	totalPieces := 0
	totalKg := decimal.Zero
	for _, l := range lines {
		totalPieces += l.Pieces
		totalKg = totalKg.Add(l.Kg)
	}
	if totalPieces <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Total pieces must be positive")
	}
	if totalKg.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Total kg must be positive")
	}

	batch := &Batch{
		BaseEntity:    shared.NewBaseEntity(),
		BatchCode:     batchCode,
		ReceiptDate:   receiptDate,
		BranchID:      branchID,
		Supplier:      supplier,
		Notes:         notes,
		BuyPricePerKg: buyPricePerKg,
		InitialPieces: totalPieces,
		InitialKg:     totalKg,
		AvgKgPerPiece: safeDivByPieces(totalKg, totalPieces),
		Status:        BatchStatusOpen,
		Lines:         make([]BatchLine, 0, len(lines)),
	}
	for _, l := range lines {
		batch.Lines = append(batch.Lines, newBatchLine(batch.ID, l))
	}
	return batch, nil
}

// IsOpen returns true if the batch is still open
func (b *Batch) IsOpen() bool {
	return b.Status == BatchStatusOpen
}

// IsClosed returns true if the batch has been closed
func (b *Batch) IsClosed() bool {
	return b.Status == BatchStatusClosed
}

// Close transitions the batch OPEN -> CLOSED. The transition is terminal;
// closing an already closed batch fails.
func (b *Batch) Close(at time.Time) error {
	if b.IsClosed() {
		return shared.NewDomainError("BATCH_CLOSED", "Batch already closed")
	}
	b.Status = BatchStatusClosed
	b.ClosedAt = &at
	b.UpdatedAt = at
	return nil
}

// LineForSize returns the batch line for the given size, or nil if the batch
// does not carry that size.
func (b *Batch) LineForSize(sizeID uuid.UUID) *BatchLine {
	for i := range b.Lines {
		if b.Lines[i].SizeID == sizeID {
			return &b.Lines[i]
		}
	}
	return nil
}

// StockValue returns the remaining stock value at buy price for the given
// on-hand kg.
func (b *Batch) StockValue(onHandKg decimal.Decimal) decimal.Decimal {
	return onHandKg.Mul(b.BuyPricePerKg).Round(2)
}

// safeDivByPieces divides kg by a piece count, returning zero when the
// denominator is zero.
func safeDivByPieces(kg decimal.Decimal, pieces int) decimal.Decimal {
	if pieces == 0 {
		return decimal.Zero
	}
	return kg.Div(decimal.NewFromInt(int64(pieces)))
}
