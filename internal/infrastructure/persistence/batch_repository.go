package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/fisherp/backend/internal/domain/inventory"
	"github.com/fisherp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBatchRepository implements BatchRepository using GORM
type GormBatchRepository struct {
	db *gorm.DB
}

// NewGormBatchRepository creates a new GormBatchRepository
func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

// FindByID finds a batch by its ID, with lines loaded
func (r *GormBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Batch, error) {
	var batch inventory.Batch
	if err := r.db.WithContext(ctx).Preload("Lines").First(&batch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &batch, nil
}

// FindByCode finds a batch by its unique batch code, with lines loaded
func (r *GormBatchRepository) FindByCode(ctx context.Context, code string) (*inventory.Batch, error) {
	var batch inventory.Batch
	if err := r.db.WithContext(ctx).Preload("Lines").First(&batch, "batch_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &batch, nil
}

// FindOpenByBranchAndSize finds OPEN batches for a branch that carry the given
// size, in depletion order: receipt date ascending, ties broken by creation
// time then ID. The (batch_id, size_id) pair is unique on batch_lines, so the
// join yields at most one row per batch.
func (r *GormBatchRepository) FindOpenByBranchAndSize(ctx context.Context, branchID, sizeID uuid.UUID) ([]inventory.Batch, error) {
	var batches []inventory.Batch
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Joins("JOIN batch_lines ON batch_lines.batch_id = batches.id").
		Where("batches.branch_id = ? AND batches.status = ?", branchID, inventory.BatchStatusOpen).
		Where("batch_lines.size_id = ?", sizeID).
		Order("batches.receipt_date ASC, batches.created_at ASC, batches.id ASC").
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// ListOpen lists OPEN batches with lines loaded
func (r *GormBatchRepository) ListOpen(ctx context.Context, filter shared.Filter) ([]inventory.Batch, error) {
	var batches []inventory.Batch
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&inventory.Batch{}).
			Preload("Lines").
			Where("status = ?", inventory.BatchStatusOpen),
		filter,
	)

	if err := query.Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// CountOpen counts OPEN batches
func (r *GormBatchRepository) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&inventory.Batch{}).
		Where("status = ?", inventory.BatchStatusOpen).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByCodePrefix counts batches whose code starts with the prefix
func (r *GormBatchRepository) CountByCodePrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&inventory.Batch{}).
		Where("batch_code LIKE ?", prefix+"%").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a batch together with its lines
func (r *GormBatchRepository) Save(ctx context.Context, batch *inventory.Batch) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(batch).Error
}

// applyFilter applies filter options to the query
func (r *GormBatchRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, BatchSortFields, "receipt_date")
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(field + " " + orderDir)
	} else {
		query = query.Order("receipt_date DESC, created_at DESC")
	}

	if filter.Search != "" {
		query = query.Where("batch_code ILIKE ?", "%"+filter.Search+"%")
	}

	return query
}

// Ensure GormBatchRepository implements BatchRepository
var _ inventory.BatchRepository = (*GormBatchRepository)(nil)
