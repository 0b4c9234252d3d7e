package persistence

import (
	"context"

	"github.com/fisherp/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAdjustmentRepository implements AdjustmentRepository using GORM.
// Adjustments are an append-only audit trail.
type GormAdjustmentRepository struct {
	db *gorm.DB
}

// NewGormAdjustmentRepository creates a new GormAdjustmentRepository
func NewGormAdjustmentRepository(db *gorm.DB) *GormAdjustmentRepository {
	return &GormAdjustmentRepository{db: db}
}

// Save inserts an adjustment row
func (r *GormAdjustmentRepository) Save(ctx context.Context, adj *inventory.InventoryAdjustment) error {
	return r.db.WithContext(ctx).Create(adj).Error
}

// TotalsForBatch sums piece and kg deltas for a batch
func (r *GormAdjustmentRepository) TotalsForBatch(ctx context.Context, batchID uuid.UUID) (inventory.QuantityTotals, error) {
	var row quantityRow
	if err := r.db.WithContext(ctx).Model(&inventory.InventoryAdjustment{}).
		Select("COALESCE(SUM(pieces_delta), 0) as pieces, COALESCE(SUM(kg_delta), 0) as kg").
		Where("batch_id = ?", batchID).
		Scan(&row).Error; err != nil {
		return inventory.QuantityTotals{}, err
	}
	return inventory.QuantityTotals{Pieces: int(row.Pieces), Kg: row.Kg}, nil
}

// ListForBatch lists adjustments for a batch, oldest first
func (r *GormAdjustmentRepository) ListForBatch(ctx context.Context, batchID uuid.UUID) ([]inventory.InventoryAdjustment, error) {
	var adjustments []inventory.InventoryAdjustment
	if err := r.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Order("ts ASC, created_at ASC").
		Find(&adjustments).Error; err != nil {
		return nil, err
	}
	return adjustments, nil
}

// Ensure GormAdjustmentRepository implements AdjustmentRepository
var _ inventory.AdjustmentRepository = (*GormAdjustmentRepository)(nil)
