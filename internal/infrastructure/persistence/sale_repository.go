package persistence

import (
	"context"
	"time"

	"github.com/fisherp/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormSaleRepository implements SaleRepository using GORM. Sales are
// append-only; the repository never updates or deletes rows.
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// Save inserts a sale row
func (r *GormSaleRepository) Save(ctx context.Context, sale *inventory.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

// quantityRow receives summed movement quantities from aggregate queries
type quantityRow struct {
	Pieces int64
	Kg     decimal.Decimal
}

// TotalsForBatch sums pieces and kg sold against a batch
func (r *GormSaleRepository) TotalsForBatch(ctx context.Context, batchID uuid.UUID) (inventory.QuantityTotals, error) {
	var row quantityRow
	if err := r.db.WithContext(ctx).Model(&inventory.Sale{}).
		Select("COALESCE(SUM(pieces_sold), 0) as pieces, COALESCE(SUM(kg_sold), 0) as kg").
		Where("batch_id = ?", batchID).
		Scan(&row).Error; err != nil {
		return inventory.QuantityTotals{}, err
	}
	return inventory.QuantityTotals{Pieces: int(row.Pieces), Kg: row.Kg}, nil
}

// TotalsForBatchSize sums pieces and kg sold against a (batch, size) pair
func (r *GormSaleRepository) TotalsForBatchSize(ctx context.Context, batchID, sizeID uuid.UUID) (inventory.QuantityTotals, error) {
	var row quantityRow
	if err := r.db.WithContext(ctx).Model(&inventory.Sale{}).
		Select("COALESCE(SUM(pieces_sold), 0) as pieces, COALESCE(SUM(kg_sold), 0) as kg").
		Where("batch_id = ? AND size_id = ?", batchID, sizeID).
		Scan(&row).Error; err != nil {
		return inventory.QuantityTotals{}, err
	}
	return inventory.QuantityTotals{Pieces: int(row.Pieces), Kg: row.Kg}, nil
}

// ListRecent lists the most recent sales, newest first
func (r *GormSaleRepository) ListRecent(ctx context.Context, limit int) ([]inventory.Sale, error) {
	var sales []inventory.Sale
	if err := r.db.WithContext(ctx).
		Order("sale_ts DESC, created_at DESC").
		Limit(limit).
		Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// ListBetween lists sales with a sale timestamp in [from, to), oldest first
func (r *GormSaleRepository) ListBetween(ctx context.Context, from, to time.Time) ([]inventory.Sale, error) {
	var sales []inventory.Sale
	if err := r.db.WithContext(ctx).
		Where("sale_ts >= ? AND sale_ts < ?", from, to).
		Order("sale_ts ASC, created_at ASC").
		Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// Ensure GormSaleRepository implements SaleRepository
var _ inventory.SaleRepository = (*GormSaleRepository)(nil)
