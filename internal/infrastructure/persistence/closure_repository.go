package persistence

import (
	"context"
	"errors"

	"github.com/fisherp/backend/internal/domain/inventory"
	"github.com/fisherp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormClosureRepository implements ClosureRepository using GORM
type GormClosureRepository struct {
	db *gorm.DB
}

// NewGormClosureRepository creates a new GormClosureRepository
func NewGormClosureRepository(db *gorm.DB) *GormClosureRepository {
	return &GormClosureRepository{db: db}
}

// Save inserts a closure row. The unique index on batch_id guarantees at most
// one closure per batch.
func (r *GormClosureRepository) Save(ctx context.Context, closure *inventory.BatchClosure) error {
	return r.db.WithContext(ctx).Create(closure).Error
}

// FindByBatch finds the closure for a batch
func (r *GormClosureRepository) FindByBatch(ctx context.Context, batchID uuid.UUID) (*inventory.BatchClosure, error) {
	var closure inventory.BatchClosure
	if err := r.db.WithContext(ctx).First(&closure, "batch_id = ?", batchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &closure, nil
}

// ListAll lists all closures, most recently closed first
func (r *GormClosureRepository) ListAll(ctx context.Context) ([]inventory.BatchClosure, error) {
	var closures []inventory.BatchClosure
	if err := r.db.WithContext(ctx).
		Order("closed_ts DESC").
		Find(&closures).Error; err != nil {
		return nil, err
	}
	return closures, nil
}

// Ensure GormClosureRepository implements ClosureRepository
var _ inventory.ClosureRepository = (*GormClosureRepository)(nil)
