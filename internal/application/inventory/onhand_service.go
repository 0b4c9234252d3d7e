package inventory

import (
	"context"

	"github.com/fisherp/backend/internal/domain/inventory"
	"github.com/fisherp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OnHandService answers derived stock questions. It holds no state of its
// own: every answer is a fold of immutable movement rows over a batch's
// frozen initial figures.
type OnHandService struct {
	batchRepo inventory.BatchRepository
	saleRepo  inventory.SaleRepository
	adjRepo   inventory.AdjustmentRepository
}

// NewOnHandService creates a new OnHandService
func NewOnHandService(
	batchRepo inventory.BatchRepository,
	saleRepo inventory.SaleRepository,
	adjRepo inventory.AdjustmentRepository,
) *OnHandService {
	return &OnHandService{
		batchRepo: batchRepo,
		saleRepo:  saleRepo,
		adjRepo:   adjRepo,
	}
}

// BatchOnHand computes the batch-level position: initial minus sales plus
// adjustments, in both units. An unknown batch yields the zero position.
func (s *OnHandService) BatchOnHand(ctx context.Context, batchID uuid.UUID) (*BatchOnHandResponse, error) {
	batch, err := s.batchRepo.FindByID(ctx, batchID)
	if err != nil {
		if shared.IsNotFound(err) {
			return &BatchOnHandResponse{BatchID: batchID}, nil
		}
		return nil, err
	}

	onHand, err := s.batchOnHand(ctx, batch)
	if err != nil {
		return nil, err
	}
	return &BatchOnHandResponse{
		BatchID:   batch.ID,
		BatchCode: batch.BatchCode,
		OnHand:    onHand,
	}, nil
}

// BatchLineOnHand computes the (batch, size) position: line initial minus
// sales recorded against that pair. Adjustments have no size attribution and
// are not applied at this granularity.
func (s *OnHandService) BatchLineOnHand(ctx context.Context, batchID, sizeID uuid.UUID) (*LineOnHandResponse, error) {
	batch, err := s.batchRepo.FindByID(ctx, batchID)
	if err != nil {
		if shared.IsNotFound(err) {
			return &LineOnHandResponse{BatchID: batchID, SizeID: sizeID}, nil
		}
		return nil, err
	}

	line := batch.LineForSize(sizeID)
	if line == nil {
		return &LineOnHandResponse{BatchID: batchID, SizeID: sizeID}, nil
	}

	sold, err := s.saleRepo.TotalsForBatchSize(ctx, batchID, sizeID)
	if err != nil {
		return nil, err
	}
	return &LineOnHandResponse{
		BatchID: batchID,
		SizeID:  sizeID,
		OnHand:  inventory.ComputeOnHand(line.Pieces, line.Kg, sold, inventory.QuantityTotals{Kg: decimal.Zero}),
	}, nil
}

// FIFOCandidates builds the allocation candidate list for a (branch, size)
// pair: open batches carrying the size, oldest receipt first, annotated with
// their line-level on-hand position. Batches without positive stock in both
// units are dropped.
func (s *OnHandService) FIFOCandidates(ctx context.Context, branchID, sizeID uuid.UUID) ([]inventory.Candidate, error) {
	return BuildFIFOCandidates(ctx, s.batchRepo, s.saleRepo, branchID, sizeID)
}

func (s *OnHandService) batchOnHand(ctx context.Context, batch *inventory.Batch) (inventory.OnHand, error) {
	sold, err := s.saleRepo.TotalsForBatch(ctx, batch.ID)
	if err != nil {
		return inventory.OnHand{}, err
	}
	adjusted, err := s.adjRepo.TotalsForBatch(ctx, batch.ID)
	if err != nil {
		return inventory.OnHand{}, err
	}
	return inventory.ComputeOnHand(batch.InitialPieces, batch.InitialKg, sold, adjusted), nil
}

// BuildFIFOCandidates assembles the candidate list from explicit
// repositories. The sales allocation path calls it with transaction-scoped
// repositories so candidate reads and sale writes share one transaction.
func BuildFIFOCandidates(
	ctx context.Context,
	batchRepo inventory.BatchRepository,
	saleRepo inventory.SaleRepository,
	branchID, sizeID uuid.UUID,
) ([]inventory.Candidate, error) {
	batches, err := batchRepo.FindOpenByBranchAndSize(ctx, branchID, sizeID)
	if err != nil {
		return nil, err
	}

	candidates := make([]inventory.Candidate, 0, len(batches))
	for i := range batches {
		b := &batches[i]
		line := b.LineForSize(sizeID)
		if line == nil {
			continue
		}
		sold, err := saleRepo.TotalsForBatchSize(ctx, b.ID, sizeID)
		if err != nil {
			return nil, err
		}
		onHand := inventory.ComputeOnHand(line.Pieces, line.Kg, sold, inventory.QuantityTotals{Kg: decimal.Zero})
		if !onHand.HasStock() {
			continue
		}
		candidates = append(candidates, inventory.Candidate{
			BatchID:       b.ID,
			BatchCode:     b.BatchCode,
			AvgKgPerPiece: b.AvgKgPerPiece,
			OnHandPieces:  onHand.Pieces,
			OnHandKg:      onHand.Kg,
		})
	}
	return candidates, nil
}
