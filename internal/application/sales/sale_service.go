package sales

import (
	"context"
	"time"

	"github.com/fisherp/backend/internal/domain/inventory"
	"github.com/fisherp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SaleService posts sales against a batch the clerk has already picked.
// Posted rows are immutable; corrections go through inventory adjustments.
//
// Single-batch posting does not pre-check stock sufficiency: the clerk is
// trusted to have weighed real fish, and on-hand is derived afterwards. The
// FIFO path in AllocationService is the one that enforces availability.
type SaleService struct {
	txScope         TransactionScope
	saleRepo        inventory.SaleRepository
	tolerancePieces int
}

// NewSaleService creates a new SaleService. tolerancePieces is the allowed
// deviation between counted and fingerprint-suggested pieces before a
// wholesale sale is variance-flagged.
func NewSaleService(txScope TransactionScope, saleRepo inventory.SaleRepository, tolerancePieces int) *SaleService {
	return &SaleService{
		txScope:         txScope,
		saleRepo:        saleRepo,
		tolerancePieces: tolerancePieces,
	}
}

// RecordRetailSale posts a piece-counted retail sale against an open batch
func (s *SaleService) RecordRetailSale(ctx context.Context, req RecordRetailSaleRequest) (*SaleResponse, error) {
	basis, err := inventory.NormalizePriceBasis(req.PriceBasis)
	if err != nil {
		return nil, err
	}

	var sale *inventory.Sale
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		batch, err := openBatch(ctx, repos, req.BatchID)
		if err != nil {
			return err
		}
		sale, err = inventory.NewRetailSale(
			batch, req.BranchID, req.SizeID, req.Customer,
			req.Pieces, req.UnitPrice, basis, req.TotalPrice,
			time.Now().UTC(),
		)
		if err != nil {
			return err
		}
		return repos.SaleRepo().Save(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	resp := ToSaleResponse(sale)
	return &resp, nil
}

// RecordWholesaleSale posts a weighed wholesale sale against an open batch.
// The counted pieces are checked against the batch fingerprint and the row
// is flagged when the deviation exceeds the configured tolerance.
func (s *SaleService) RecordWholesaleSale(ctx context.Context, req RecordWholesaleSaleRequest) (*SaleResponse, error) {
	basis, err := inventory.NormalizePriceBasis(req.PriceBasis)
	if err != nil {
		return nil, err
	}

	var sale *inventory.Sale
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		batch, err := openBatch(ctx, repos, req.BatchID)
		if err != nil {
			return err
		}
		sale, err = inventory.NewWholesaleSale(
			batch, req.BranchID, req.SizeID, req.Customer,
			req.Kg, req.PiecesCounted, s.tolerancePieces,
			req.UnitPrice, basis, req.TotalPrice,
			time.Now().UTC(),
		)
		if err != nil {
			return err
		}
		return repos.SaleRepo().Save(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	resp := ToSaleResponse(sale)
	return &resp, nil
}

// ListRecentSales lists the most recently posted sales, newest first
func (s *SaleService) ListRecentSales(ctx context.Context, limit int) ([]SaleResponse, error) {
	if limit < 1 {
		limit = 50
	}
	items, err := s.saleRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	responses := make([]SaleResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToSaleResponse(&items[i]))
	}
	return responses, nil
}

// openBatch loads a batch and rejects it if it is no longer open. Movements
// are accepted against open batches only.
func openBatch(ctx context.Context, repos TransactionalRepositories, batchID uuid.UUID) (*inventory.Batch, error) {
	batch, err := repos.BatchRepo().FindByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if batch.IsClosed() {
		return nil, shared.NewDomainError("BATCH_CLOSED", "Cannot sell from a closed batch")
	}
	return batch, nil
}
