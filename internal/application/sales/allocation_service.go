package sales

import (
	"context"
	"time"

	appinventory "github.com/fisherp/backend/internal/application/inventory"
	"github.com/fisherp/backend/internal/domain/inventory"
)

// AllocationService posts FIFO sales: the clerk names a branch, a size and a
// quantity, and the allocator splits the quantity across open batches, oldest
// receipt first. Candidate reads and sale writes share one transaction, and
// allocation is all-or-nothing: an insufficient request posts no rows.
type AllocationService struct {
	txScope         TransactionScope
	tolerancePieces int
}

// NewAllocationService creates a new AllocationService
func NewAllocationService(txScope TransactionScope, tolerancePieces int) *AllocationService {
	return &AllocationService{
		txScope:         txScope,
		tolerancePieces: tolerancePieces,
	}
}

// SellRetailFIFO allocates a retail piece request across open batches and
// posts one sale row per batch slice. Each slice's kg comes from its own
// batch fingerprint.
func (s *AllocationService) SellRetailFIFO(ctx context.Context, req FIFORetailSaleRequest) ([]SaleResponse, error) {
	basis, err := inventory.NormalizePriceBasis(req.PriceBasis)
	if err != nil {
		return nil, err
	}

	var posted []*inventory.Sale
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		candidates, err := appinventory.BuildFIFOCandidates(ctx, repos.BatchRepo(), repos.SaleRepo(), req.BranchID, req.SizeID)
		if err != nil {
			return err
		}
		slices, err := inventory.AllocateRetailPieces(candidates, req.Pieces)
		if err != nil {
			return err
		}

		at := time.Now().UTC()
		for _, slice := range slices {
			batch, err := repos.BatchRepo().FindByID(ctx, slice.BatchID)
			if err != nil {
				return err
			}
			sizeID := req.SizeID
			sale, err := inventory.NewRetailSale(
				batch, req.BranchID, &sizeID, req.Customer,
				slice.Pieces, req.UnitPrice, basis, nil, at,
			)
			if err != nil {
				return err
			}
			if err := repos.SaleRepo().Save(ctx, sale); err != nil {
				return err
			}
			posted = append(posted, sale)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponses(posted), nil
}

// SellWholesaleFIFO allocates a wholesale kg request across open batches and
// posts one sale row per batch slice. The clerk's counted pieces are
// distributed over the slices proportionally to kg; each slice carries its
// own fingerprint-suggested count and variance flag.
func (s *AllocationService) SellWholesaleFIFO(ctx context.Context, req FIFOWholesaleSaleRequest) ([]SaleResponse, error) {
	basis, err := inventory.NormalizePriceBasis(req.PriceBasis)
	if err != nil {
		return nil, err
	}

	var posted []*inventory.Sale
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		candidates, err := appinventory.BuildFIFOCandidates(ctx, repos.BatchRepo(), repos.SaleRepo(), req.BranchID, req.SizeID)
		if err != nil {
			return err
		}
		slices, err := inventory.AllocateWholesaleKg(candidates, req.Kg, req.PiecesCounted, s.tolerancePieces)
		if err != nil {
			return err
		}

		at := time.Now().UTC()
		for _, slice := range slices {
			batch, err := repos.BatchRepo().FindByID(ctx, slice.BatchID)
			if err != nil {
				return err
			}
			sizeID := req.SizeID
			sale, err := inventory.NewWholesaleSale(
				batch, req.BranchID, &sizeID, req.Customer,
				slice.Kg, slice.Pieces, s.tolerancePieces,
				req.UnitPrice, basis, nil, at,
			)
			if err != nil {
				return err
			}
			if err := repos.SaleRepo().Save(ctx, sale); err != nil {
				return err
			}
			posted = append(posted, sale)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponses(posted), nil
}

func toSaleResponses(sales []*inventory.Sale) []SaleResponse {
	responses := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		responses = append(responses, ToSaleResponse(s))
	}
	return responses
}
