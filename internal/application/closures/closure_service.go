package closures

import (
	"context"
	"fmt"
	"time"

	"github.com/fisherp/backend/internal/domain/inventory"
	"github.com/fisherp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClosureService reconciles and closes batches. A batch closes only when it
// is depleted: zero pieces and zero kg within epsilon. A small residual kg
// within the configured tolerance is zeroed automatically with a
// CLOSE_TO_ZERO adjustment before the check; anything larger must be cleared
// with a manual adjustment first.
type ClosureService struct {
	txScope            TransactionScope
	closureRepo        inventory.ClosureRepository
	autoZeroTolerance  decimal.Decimal
	depletionEpsilonKg decimal.Decimal
}

// NewClosureService creates a new ClosureService. autoZeroToleranceKg bounds
// the residual that closure may write off on its own.
func NewClosureService(
	txScope TransactionScope,
	closureRepo inventory.ClosureRepository,
	autoZeroToleranceKg decimal.Decimal,
) *ClosureService {
	return &ClosureService{
		txScope:            txScope,
		closureRepo:        closureRepo,
		autoZeroTolerance:  autoZeroToleranceKg,
		depletionEpsilonKg: decimal.New(1, -6),
	}
}

// CloseBatchRequest closes one batch
type CloseBatchRequest struct {
	BatchID uuid.UUID `json:"batch_id" binding:"required"`
	Notes   string    `json:"notes"`
}

// ClosureResponse is the API representation of a batch closure
type ClosureResponse struct {
	BatchID    uuid.UUID        `json:"batch_id"`
	BatchCode  string           `json:"batch_code,omitempty"`
	ClosedTS   time.Time        `json:"closed_ts"`
	LossKg     decimal.Decimal  `json:"loss_kg"`
	LossPct    decimal.Decimal  `json:"loss_pct"`
	Notes      string           `json:"notes,omitempty"`
	AutoZeroKg *decimal.Decimal `json:"auto_zero_kg,omitempty"`
}

// CloseBatch reconciles a depleted batch and closes it. The shrinkage figures
// compare initial kg against total kg sold; auto-zero adjustments do not
// count as sold, so they surface in the loss rather than hiding it.
func (s *ClosureService) CloseBatch(ctx context.Context, req CloseBatchRequest) (*ClosureResponse, error) {
	var resp *ClosureResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		batch, err := repos.BatchRepo().FindByID(ctx, req.BatchID)
		if err != nil {
			return err
		}
		if batch.IsClosed() {
			return shared.NewDomainError("BATCH_CLOSED", "Batch already closed")
		}

		sold, err := repos.SaleRepo().TotalsForBatch(ctx, batch.ID)
		if err != nil {
			return err
		}
		adjusted, err := repos.AdjustmentRepo().TotalsForBatch(ctx, batch.ID)
		if err != nil {
			return err
		}
		onHand := inventory.ComputeOnHand(batch.InitialPieces, batch.InitialKg, sold, adjusted)

		at := time.Now().UTC()
		var autoZeroKg *decimal.Decimal
		if !onHand.IsDepleted(s.depletionEpsilonKg) {
			if onHand.Pieces != 0 || onHand.Kg.Abs().GreaterThan(s.autoZeroTolerance) {
				return shared.NewDomainError("BATCH_NOT_DEPLETED",
					fmt.Sprintf("Batch %s still has %d pieces and %s kg on hand", batch.BatchCode, onHand.Pieces, onHand.Kg.String()))
			}
			delta := onHand.Kg.Neg()
			adj, err := inventory.NewInventoryAdjustment(
				batch.ID, inventory.AdjustmentReasonCloseToZero,
				0, delta, "Residual zeroed at closure", at,
			)
			if err != nil {
				return err
			}
			if err := repos.AdjustmentRepo().Save(ctx, adj); err != nil {
				return err
			}
			autoZeroKg = &delta
		}

		lossKg, lossPct := inventory.ComputeLoss(batch.InitialKg, sold.Kg)
		closure, err := inventory.NewBatchClosure(batch.ID, at, lossKg, lossPct, req.Notes)
		if err != nil {
			return err
		}
		if err := repos.ClosureRepo().Save(ctx, closure); err != nil {
			return err
		}
		if err := batch.Close(at); err != nil {
			return err
		}
		if err := repos.BatchRepo().Save(ctx, batch); err != nil {
			return err
		}

		resp = &ClosureResponse{
			BatchID:    batch.ID,
			BatchCode:  batch.BatchCode,
			ClosedTS:   at,
			LossKg:     lossKg,
			LossPct:    lossPct,
			Notes:      req.Notes,
			AutoZeroKg: autoZeroKg,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetClosure retrieves the closure record for a batch
func (s *ClosureService) GetClosure(ctx context.Context, batchID uuid.UUID) (*ClosureResponse, error) {
	closure, err := s.closureRepo.FindByBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	return &ClosureResponse{
		BatchID:  closure.BatchID,
		ClosedTS: closure.ClosedTS,
		LossKg:   closure.LossKg,
		LossPct:  closure.LossPct,
		Notes:    closure.Notes,
	}, nil
}
