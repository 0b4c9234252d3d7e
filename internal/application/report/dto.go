package report

import (
	"time"

	"github.com/fisherp/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventorySummaryRow is one open batch with its derived position and its
// remaining stock value at buy price.
type InventorySummaryRow struct {
	BatchID       uuid.UUID        `json:"batch_id"`
	BatchCode     string           `json:"batch_code"`
	BranchID      uuid.UUID        `json:"branch_id"`
	ReceiptDate   time.Time        `json:"receipt_date"`
	OnHand        inventory.OnHand `json:"on_hand"`
	AvgKgPerPiece decimal.Decimal  `json:"avg_kg_per_piece"`
	BuyPricePerKg decimal.Decimal  `json:"buy_price_per_kg"`
	StockValue    decimal.Decimal  `json:"stock_value"`
}

// InventorySummaryResponse is the stock position across all open batches
type InventorySummaryResponse struct {
	Rows        []InventorySummaryRow `json:"rows"`
	TotalPieces int                   `json:"total_pieces"`
	TotalKg     decimal.Decimal       `json:"total_kg"`
	TotalValue  decimal.Decimal       `json:"total_value"`
}

// SalesReportResponse aggregates the sales of a period. Revenue sums priced
// rows only; cost of goods is kg sold times each batch's buy price.
type SalesReportResponse struct {
	From            time.Time       `json:"from"`
	To              time.Time       `json:"to"`
	SaleCount       int             `json:"sale_count"`
	TotalPieces     int             `json:"total_pieces"`
	TotalKg         decimal.Decimal `json:"total_kg"`
	Revenue         decimal.Decimal `json:"revenue"`
	CostOfGoods     decimal.Decimal `json:"cost_of_goods"`
	GrossMargin     decimal.Decimal `json:"gross_margin"`
	UnpricedCount   int             `json:"unpriced_count"`
	VarianceFlagged int             `json:"variance_flagged"`
}

// LossReportRow is the recorded shrinkage of one closed batch
type LossReportRow struct {
	BatchID   uuid.UUID       `json:"batch_id"`
	BatchCode string          `json:"batch_code"`
	ClosedTS  time.Time       `json:"closed_ts"`
	InitialKg decimal.Decimal `json:"initial_kg"`
	LossKg    decimal.Decimal `json:"loss_kg"`
	LossPct   decimal.Decimal `json:"loss_pct"`
	Notes     string          `json:"notes,omitempty"`
}

// LossReportResponse aggregates shrinkage across closed batches. The overall
// percentage weights each batch by its initial kg.
type LossReportResponse struct {
	Rows           []LossReportRow `json:"rows"`
	TotalInitialKg decimal.Decimal `json:"total_initial_kg"`
	TotalLossKg    decimal.Decimal `json:"total_loss_kg"`
	OverallLossPct decimal.Decimal `json:"overall_loss_pct"`
}
