package report

import (
	"context"
	"time"

	"github.com/fisherp/backend/internal/domain/inventory"
	"github.com/fisherp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportService builds read-only projections over the movement ledger.
// Reports never write; they recompute from the same rows the on-hand fold
// uses, so a report and a position query can never disagree.
type ReportService struct {
	batchRepo   inventory.BatchRepository
	saleRepo    inventory.SaleRepository
	adjRepo     inventory.AdjustmentRepository
	closureRepo inventory.ClosureRepository
}

// NewReportService creates a new ReportService
func NewReportService(
	batchRepo inventory.BatchRepository,
	saleRepo inventory.SaleRepository,
	adjRepo inventory.AdjustmentRepository,
	closureRepo inventory.ClosureRepository,
) *ReportService {
	return &ReportService{
		batchRepo:   batchRepo,
		saleRepo:    saleRepo,
		adjRepo:     adjRepo,
		closureRepo: closureRepo,
	}
}

// InventorySummary lists every open batch with its derived position and
// stock value at buy price.
func (s *ReportService) InventorySummary(ctx context.Context, filter shared.Filter) (*InventorySummaryResponse, error) {
	batches, err := s.batchRepo.ListOpen(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &InventorySummaryResponse{
		Rows:       make([]InventorySummaryRow, 0, len(batches)),
		TotalKg:    decimal.Zero,
		TotalValue: decimal.Zero,
	}
	for i := range batches {
		b := &batches[i]
		sold, err := s.saleRepo.TotalsForBatch(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		adjusted, err := s.adjRepo.TotalsForBatch(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		onHand := inventory.ComputeOnHand(b.InitialPieces, b.InitialKg, sold, adjusted)
		value := b.StockValue(onHand.Kg)

		resp.Rows = append(resp.Rows, InventorySummaryRow{
			BatchID:       b.ID,
			BatchCode:     b.BatchCode,
			BranchID:      b.BranchID,
			ReceiptDate:   b.ReceiptDate,
			OnHand:        onHand,
			AvgKgPerPiece: b.AvgKgPerPiece,
			BuyPricePerKg: b.BuyPricePerKg,
			StockValue:    value,
		})
		resp.TotalPieces += onHand.Pieces
		resp.TotalKg = resp.TotalKg.Add(onHand.Kg)
		resp.TotalValue = resp.TotalValue.Add(value)
	}
	return resp, nil
}

// SalesReport aggregates sales with SaleTS in [from, to): volumes, revenue
// over priced rows, cost of goods at each batch's buy price, and the margin.
func (s *ReportService) SalesReport(ctx context.Context, from, to time.Time) (*SalesReportResponse, error) {
	sales, err := s.saleRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	resp := &SalesReportResponse{
		From:        from,
		To:          to,
		TotalKg:     decimal.Zero,
		Revenue:     decimal.Zero,
		CostOfGoods: decimal.Zero,
	}
	buyPrices := make(map[uuid.UUID]decimal.Decimal)
	for i := range sales {
		sale := &sales[i]
		resp.SaleCount++
		resp.TotalPieces += sale.PiecesSold
		resp.TotalKg = resp.TotalKg.Add(sale.KgSold)
		if sale.VarianceFlagged {
			resp.VarianceFlagged++
		}

		if sale.TotalPrice != nil {
			resp.Revenue = resp.Revenue.Add(*sale.TotalPrice)
		} else {
			resp.UnpricedCount++
		}

		buyPrice, ok := buyPrices[sale.BatchID]
		if !ok {
			batch, err := s.batchRepo.FindByID(ctx, sale.BatchID)
			if err != nil {
				return nil, err
			}
			buyPrice = batch.BuyPricePerKg
			buyPrices[sale.BatchID] = buyPrice
		}
		resp.CostOfGoods = resp.CostOfGoods.Add(sale.KgSold.Mul(buyPrice))
	}
	resp.CostOfGoods = resp.CostOfGoods.Round(2)
	resp.GrossMargin = resp.Revenue.Sub(resp.CostOfGoods)
	return resp, nil
}

// LossReport lists recorded shrinkage per closed batch with an overall
// percentage weighted by initial kg.
func (s *ReportService) LossReport(ctx context.Context) (*LossReportResponse, error) {
	closures, err := s.closureRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := &LossReportResponse{
		Rows:           make([]LossReportRow, 0, len(closures)),
		TotalInitialKg: decimal.Zero,
		TotalLossKg:    decimal.Zero,
		OverallLossPct: decimal.Zero,
	}
	for i := range closures {
		c := &closures[i]
		batch, err := s.batchRepo.FindByID(ctx, c.BatchID)
		if err != nil {
			return nil, err
		}
		resp.Rows = append(resp.Rows, LossReportRow{
			BatchID:   c.BatchID,
			BatchCode: batch.BatchCode,
			ClosedTS:  c.ClosedTS,
			InitialKg: batch.InitialKg,
			LossKg:    c.LossKg,
			LossPct:   c.LossPct,
			Notes:     c.Notes,
		})
		resp.TotalInitialKg = resp.TotalInitialKg.Add(batch.InitialKg)
		resp.TotalLossKg = resp.TotalLossKg.Add(c.LossKg)
	}
	if resp.TotalInitialKg.IsPositive() {
		resp.OverallLossPct = resp.TotalLossKg.Div(resp.TotalInitialKg).Mul(decimal.NewFromInt(100))
	}
	return resp, nil
}
