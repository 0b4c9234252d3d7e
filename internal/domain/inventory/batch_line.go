package inventory

import (
	"github.com/fisherp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchLine is the per-size breakdown of a batch: one line per (batch, size)
// with its own frozen average weight per piece.
type BatchLine struct {
	shared.BaseEntity
	BatchID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_batch_line_batch_size,priority:1"`
	SizeID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_batch_line_batch_size,priority:2"`
	Pieces        int             `gorm:"not null"`
	Kg            decimal.Decimal `gorm:"type:decimal(18,3);not null"`
	AvgKgPerPiece decimal.Decimal `gorm:"type:decimal(18,6);not null"`
}

// TableName returns the table name for GORM
func (BatchLine) TableName() string {
	return "batch_lines"
}

func newBatchLine(batchID uuid.UUID, in LineInput) BatchLine {
	return BatchLine{
		BaseEntity:    shared.NewBaseEntity(),
		BatchID:       batchID,
		SizeID:        in.SizeID,
		Pieces:        in.Pieces,
		Kg:            in.Kg,
		AvgKgPerPiece: safeDivByPieces(in.Kg, in.Pieces),
	}
}
