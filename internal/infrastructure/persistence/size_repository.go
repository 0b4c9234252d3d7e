package persistence

import (
	"context"
	"errors"

	"github.com/fisherp/backend/internal/domain/refdata"
	"github.com/fisherp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSizeRepository implements SizeRepository using GORM
type GormSizeRepository struct {
	db *gorm.DB
}

// NewGormSizeRepository creates a new GormSizeRepository
func NewGormSizeRepository(db *gorm.DB) *GormSizeRepository {
	return &GormSizeRepository{db: db}
}

// FindByID finds a size by its ID
func (r *GormSizeRepository) FindByID(ctx context.Context, id uuid.UUID) (*refdata.Size, error) {
	var size refdata.Size
	if err := r.db.WithContext(ctx).First(&size, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &size, nil
}

// FindByCode finds a size by its code
func (r *GormSizeRepository) FindByCode(ctx context.Context, code string) (*refdata.Size, error) {
	var size refdata.Size
	if err := r.db.WithContext(ctx).First(&size, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &size, nil
}

// FindAll returns all sizes ordered by sort order then code
func (r *GormSizeRepository) FindAll(ctx context.Context) ([]refdata.Size, error) {
	var sizes []refdata.Size
	if err := r.db.WithContext(ctx).Order("sort_order ASC, code ASC").Find(&sizes).Error; err != nil {
		return nil, err
	}
	return sizes, nil
}

// Save creates or updates a size
func (r *GormSizeRepository) Save(ctx context.Context, size *refdata.Size) error {
	return r.db.WithContext(ctx).Save(size).Error
}

// Ensure GormSizeRepository implements SizeRepository
var _ refdata.SizeRepository = (*GormSizeRepository)(nil)
