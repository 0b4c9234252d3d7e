package inventory

import (
	"context"
	"time"

	"github.com/fisherp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BatchRepository defines the interface for batch persistence.
// Batch lines are child entities of the Batch aggregate and are persisted
// with their batch; they have no independent repository.
type BatchRepository interface {
	// FindByID finds a batch by its ID, with lines loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Batch, error)

	// FindByCode finds a batch by its unique batch code, with lines loaded
	FindByCode(ctx context.Context, code string) (*Batch, error)

	// FindOpenByBranchAndSize finds OPEN batches for a branch that carry the
	// given size, ordered FIFO: receipt date ascending, ties broken by
	// creation time then ID. Lines are loaded.
	FindOpenByBranchAndSize(ctx context.Context, branchID, sizeID uuid.UUID) ([]Batch, error)

	// ListOpen lists OPEN batches, newest receipt first
	ListOpen(ctx context.Context, filter shared.Filter) ([]Batch, error)

	// CountOpen counts OPEN batches
	CountOpen(ctx context.Context) (int64, error)

	// CountByCodePrefix counts batches whose code starts with the prefix;
	// used for generated batch code sequencing
	CountByCodePrefix(ctx context.Context, prefix string) (int64, error)

	// Save creates or updates a batch together with its lines
	Save(ctx context.Context, batch *Batch) error
}

// SaleRepository defines the interface for sale persistence. Sales are
// append-only; there is no update or delete.
type SaleRepository interface {
	// Save inserts a sale row
	Save(ctx context.Context, sale *Sale) error

	// TotalsForBatch sums pieces and kg sold against a batch
	TotalsForBatch(ctx context.Context, batchID uuid.UUID) (QuantityTotals, error)

	// TotalsForBatchSize sums pieces and kg sold against a (batch, size) pair
	TotalsForBatchSize(ctx context.Context, batchID, sizeID uuid.UUID) (QuantityTotals, error)

	// ListRecent lists the most recent sales, newest first
	ListRecent(ctx context.Context, limit int) ([]Sale, error)

	// ListBetween lists sales with SaleTS in [from, to), oldest first
	ListBetween(ctx context.Context, from, to time.Time) ([]Sale, error)
}

// AdjustmentRepository defines the interface for inventory adjustment
// persistence. Adjustments are an append-only audit trail.
type AdjustmentRepository interface {
	// Save inserts an adjustment row
	Save(ctx context.Context, adj *InventoryAdjustment) error

	// TotalsForBatch sums piece and kg deltas for a batch
	TotalsForBatch(ctx context.Context, batchID uuid.UUID) (QuantityTotals, error)

	// ListForBatch lists adjustments for a batch, oldest first
	ListForBatch(ctx context.Context, batchID uuid.UUID) ([]InventoryAdjustment, error)
}

// ClosureRepository defines the interface for batch closure persistence
type ClosureRepository interface {
	// Save inserts a closure row
	Save(ctx context.Context, closure *BatchClosure) error

	// FindByBatch finds the closure for a batch
	FindByBatch(ctx context.Context, batchID uuid.UUID) (*BatchClosure, error)

	// ListAll lists all closures, most recently closed first
	ListAll(ctx context.Context) ([]BatchClosure, error)
}
