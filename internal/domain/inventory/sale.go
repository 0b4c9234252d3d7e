package inventory

import (
	"strings"
	"time"

	"github.com/fisherp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleMode represents how a sale was measured at the counter
type SaleMode string

const (
	// SaleModeRetailPcs is a retail sale entered in pieces; kg is derived
	SaleModeRetailPcs SaleMode = "RETAIL_PCS"
	// SaleModeWholesaleKg is a wholesale sale entered in kg with a piece count control
	SaleModeWholesaleKg SaleMode = "WHOLESALE_KG"
)

// String returns the string representation of SaleMode
func (m SaleMode) String() string {
	return string(m)
}

// PriceBasis represents what the unit price refers to
type PriceBasis string

const (
	// PriceBasisPerKg prices by weight
	PriceBasisPerKg PriceBasis = "PER_KG"
	// PriceBasisPerPiece prices by piece
	PriceBasisPerPiece PriceBasis = "PER_PIECE"
)

// NormalizePriceBasis parses a caller-supplied price basis, defaulting to
// PER_KG when empty.
func NormalizePriceBasis(s string) (PriceBasis, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return PriceBasisPerKg, nil
	}
	switch PriceBasis(s) {
	case PriceBasisPerKg, PriceBasisPerPiece:
		return PriceBasis(s), nil
	}
	return "", shared.NewDomainError("INVALID_PRICE_BASIS", "Price basis must be PER_KG or PER_PIECE")
}

// Sale is an immutable depletion event against a single batch. Once posted a
// sale is never edited or deleted; on-hand stock is derived by folding sales
// and adjustments over the batch's initial figures.
type Sale struct {
	shared.BaseEntity
	SaleTS          time.Time        `gorm:"column:sale_ts;not null;index"`
	BranchID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	Mode            SaleMode         `gorm:"type:varchar(20);not null"`
	Customer        string           `gorm:"type:varchar(200)"`
	BatchID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	SizeID          *uuid.UUID       `gorm:"type:uuid;index"`
	PiecesSold      int              `gorm:"not null"`
	KgSold          decimal.Decimal  `gorm:"type:decimal(18,3);not null"`
	UnitPrice       *decimal.Decimal `gorm:"type:decimal(18,4)"`
	PriceBasis      PriceBasis       `gorm:"type:varchar(20);not null;default:'PER_KG'"`
	TotalPrice      *decimal.Decimal `gorm:"type:decimal(18,2)"`
	PiecesSuggested *int
	VarianceFlagged bool `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewRetailSale posts a retail sale: the clerk counts pieces and kg is
// derived from the batch-level average fingerprint. Retail sales carry no
// suggested piece count and are never variance-flagged.
func NewRetailSale(
	batch *Batch,
	branchID uuid.UUID,
	sizeID *uuid.UUID,
	customer string,
	piecesSold int,
	unitPrice *decimal.Decimal,
	priceBasis PriceBasis,
	precomputedTotal *decimal.Decimal,
	at time.Time,
) (*Sale, error) {
	if err := checkSaleBatch(batch); err != nil {
		return nil, err
	}
	if piecesSold <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Pieces sold must be positive")
	}

	kgSold := decimal.NewFromInt(int64(piecesSold)).Mul(batch.AvgKgPerPiece)
	return &Sale{
		BaseEntity: shared.NewBaseEntity(),
		SaleTS:     at,
		BranchID:   branchID,
		Mode:       SaleModeRetailPcs,
		Customer:   customer,
		BatchID:    batch.ID,
		SizeID:     sizeID,
		PiecesSold: piecesSold,
		KgSold:     kgSold,
		UnitPrice:  unitPrice,
		PriceBasis: priceBasis,
		TotalPrice: resolveTotalPrice(precomputedTotal, unitPrice, priceBasis, kgSold, piecesSold),
	}, nil
}

// NewWholesaleSale posts a wholesale sale: the scale reads kg and the clerk
// confirms a piece count. The count is checked against the batch fingerprint
// and flagged when it deviates beyond the tolerance.
func NewWholesaleSale(
	batch *Batch,
	branchID uuid.UUID,
	sizeID *uuid.UUID,
	customer string,
	kgSold decimal.Decimal,
	piecesCounted int,
	tolerancePieces int,
	unitPrice *decimal.Decimal,
	priceBasis PriceBasis,
	precomputedTotal *decimal.Decimal,
	at time.Time,
) (*Sale, error) {
	if err := checkSaleBatch(batch); err != nil {
		return nil, err
	}
	if kgSold.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Kg sold must be positive")
	}
	if piecesCounted <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Counted pieces must be positive")
	}
	if tolerancePieces < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Tolerance cannot be negative")
	}

	suggested := SuggestPieces(kgSold, batch.AvgKgPerPiece)
	flagged := varianceExceeded(piecesCounted, suggested, tolerancePieces)

	return &Sale{
		BaseEntity:      shared.NewBaseEntity(),
		SaleTS:          at,
		BranchID:        branchID,
		Mode:            SaleModeWholesaleKg,
		Customer:        customer,
		BatchID:         batch.ID,
		SizeID:          sizeID,
		PiecesSold:      piecesCounted,
		KgSold:          kgSold,
		UnitPrice:       unitPrice,
		PriceBasis:      priceBasis,
		TotalPrice:      resolveTotalPrice(precomputedTotal, unitPrice, priceBasis, kgSold, piecesCounted),
		PiecesSuggested: &suggested,
		VarianceFlagged: flagged,
	}, nil
}

// SuggestPieces converts a weight to the piece count implied by an average
// weight per piece, rounded to the nearest integer. A non-positive average
// yields zero.
func SuggestPieces(kg, avgKgPerPiece decimal.Decimal) int {
	if avgKgPerPiece.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return int(kg.Div(avgKgPerPiece).Round(0).IntPart())
}

func varianceExceeded(counted, suggested, tolerance int) bool {
	diff := counted - suggested
	if diff < 0 {
		diff = -diff
	}
	return diff > tolerance
}

func checkSaleBatch(batch *Batch) error {
	if batch == nil {
		return shared.NewDomainError("NOT_FOUND", "Batch not found")
	}
	if batch.AvgKgPerPiece.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("NOT_FOUND", "Batch has no usable average weight")
	}
	return nil
}

// resolveTotalPrice picks the total price for a sale row. A positive
// precomputed total from the caller wins; otherwise the total is derived
// from the unit price and basis, rounded to 2 decimals. Absent or
// non-positive unit prices yield no total rather than zero.
func resolveTotalPrice(
	precomputed *decimal.Decimal,
	unitPrice *decimal.Decimal,
	basis PriceBasis,
	kgSold decimal.Decimal,
	pieces int,
) *decimal.Decimal {
	if precomputed != nil && precomputed.IsPositive() {
		return precomputed
	}
	if unitPrice == nil || unitPrice.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	var total decimal.Decimal
	if basis == PriceBasisPerPiece {
		total = decimal.NewFromInt(int64(pieces)).Mul(*unitPrice).Round(2)
	} else {
		total = kgSold.Mul(*unitPrice).Round(2)
	}
	return &total
}
