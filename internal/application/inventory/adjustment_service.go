package inventory

import (
	"context"
	"time"

	"github.com/fisherp/backend/internal/domain/inventory"
	"github.com/fisherp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AdjustmentService posts manual inventory corrections. Adjustments are
// append-only: a stocktake or write-off adds a signed row, it never rewrites
// the batch's initial figures or any earlier movement.
type AdjustmentService struct {
	txScope TransactionScope
	adjRepo inventory.AdjustmentRepository
}

// NewAdjustmentService creates a new AdjustmentService
func NewAdjustmentService(txScope TransactionScope, adjRepo inventory.AdjustmentRepository) *AdjustmentService {
	return &AdjustmentService{
		txScope: txScope,
		adjRepo: adjRepo,
	}
}

// CreateAdjustment posts a manual adjustment against an open batch
func (s *AdjustmentService) CreateAdjustment(ctx context.Context, req CreateAdjustmentRequest) (*AdjustmentResponse, error) {
	if req.Reason == inventory.AdjustmentReasonCloseToZero {
		return nil, shared.NewDomainError("INVALID_INPUT", "CLOSE_TO_ZERO adjustments are posted by batch closure only")
	}

	adj, err := inventory.NewInventoryAdjustment(
		req.BatchID,
		req.Reason,
		req.PiecesDelta,
		req.KgDelta,
		req.Notes,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		batch, err := repos.BatchRepo().FindByID(ctx, req.BatchID)
		if err != nil {
			return err
		}
		if batch.IsClosed() {
			return shared.NewDomainError("BATCH_CLOSED", "Cannot adjust a closed batch")
		}
		return repos.AdjustmentRepo().Save(ctx, adj)
	})
	if err != nil {
		return nil, err
	}

	resp := ToAdjustmentResponse(adj)
	return &resp, nil
}

// ListAdjustments lists the adjustments posted against a batch, oldest first
func (s *AdjustmentService) ListAdjustments(ctx context.Context, batchID uuid.UUID) ([]AdjustmentResponse, error) {
	items, err := s.adjRepo.ListForBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	responses := make([]AdjustmentResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToAdjustmentResponse(&items[i]))
	}
	return responses, nil
}
