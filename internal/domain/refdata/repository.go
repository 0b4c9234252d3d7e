package refdata

import (
	"context"

	"github.com/google/uuid"
)

// BranchRepository defines the interface for branch persistence
type BranchRepository interface {
	// FindByID finds a branch by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Branch, error)

	// FindByName finds a branch by its exact name
	FindByName(ctx context.Context, name string) (*Branch, error)

	// FindAll returns all branches ordered by name
	FindAll(ctx context.Context) ([]Branch, error)

	// Save creates or updates a branch
	Save(ctx context.Context, branch *Branch) error
}

// SizeRepository defines the interface for size persistence
type SizeRepository interface {
	// FindByID finds a size by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Size, error)

	// FindByCode finds a size by its code
	FindByCode(ctx context.Context, code string) (*Size, error)

	// FindAll returns all sizes ordered by sort order then code
	FindAll(ctx context.Context) ([]Size, error)

	// Save creates or updates a size
	Save(ctx context.Context, size *Size) error
}
