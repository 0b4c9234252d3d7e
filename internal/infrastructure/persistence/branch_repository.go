package persistence

import (
	"context"
	"errors"

	"github.com/fisherp/backend/internal/domain/refdata"
	"github.com/fisherp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBranchRepository implements BranchRepository using GORM
type GormBranchRepository struct {
	db *gorm.DB
}

// NewGormBranchRepository creates a new GormBranchRepository
func NewGormBranchRepository(db *gorm.DB) *GormBranchRepository {
	return &GormBranchRepository{db: db}
}

// FindByID finds a branch by its ID
func (r *GormBranchRepository) FindByID(ctx context.Context, id uuid.UUID) (*refdata.Branch, error) {
	var branch refdata.Branch
	if err := r.db.WithContext(ctx).First(&branch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &branch, nil
}

// FindByName finds a branch by its exact name
func (r *GormBranchRepository) FindByName(ctx context.Context, name string) (*refdata.Branch, error) {
	var branch refdata.Branch
	if err := r.db.WithContext(ctx).First(&branch, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &branch, nil
}

// FindAll returns all branches ordered by name
func (r *GormBranchRepository) FindAll(ctx context.Context) ([]refdata.Branch, error) {
	var branches []refdata.Branch
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&branches).Error; err != nil {
		return nil, err
	}
	return branches, nil
}

// Save creates or updates a branch
func (r *GormBranchRepository) Save(ctx context.Context, branch *refdata.Branch) error {
	return r.db.WithContext(ctx).Save(branch).Error
}

// Ensure GormBranchRepository implements BranchRepository
var _ refdata.BranchRepository = (*GormBranchRepository)(nil)
