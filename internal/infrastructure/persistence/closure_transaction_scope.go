package persistence

import (
	"context"

	appclosures "github.com/fisherp/backend/internal/application/closures"
	"github.com/fisherp/backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// GormClosureTransactionScope implements the closures application
// TransactionScope using GORM transactions. The depletion check, the optional
// residual write-off, the closure row and the batch status flip all commit
// atomically.
type GormClosureTransactionScope struct {
	db *gorm.DB
}

// NewGormClosureTransactionScope creates a new GormClosureTransactionScope.
func NewGormClosureTransactionScope(db *gorm.DB) *GormClosureTransactionScope {
	return &GormClosureTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormClosureTransactionScope) Execute(ctx context.Context, fn func(repos appclosures.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormClosureTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormClosureTransactionalRepositories provides repositories scoped to one transaction.
type gormClosureTransactionalRepositories struct {
	tx *gorm.DB
}

// BatchRepo returns the batch repository scoped to the current transaction.
func (r *gormClosureTransactionalRepositories) BatchRepo() inventory.BatchRepository {
	return NewGormBatchRepository(r.tx)
}

// SaleRepo returns the sale repository scoped to the current transaction.
func (r *gormClosureTransactionalRepositories) SaleRepo() inventory.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

// AdjustmentRepo returns the adjustment repository scoped to the current transaction.
func (r *gormClosureTransactionalRepositories) AdjustmentRepo() inventory.AdjustmentRepository {
	return NewGormAdjustmentRepository(r.tx)
}

// ClosureRepo returns the closure repository scoped to the current transaction.
func (r *gormClosureTransactionalRepositories) ClosureRepo() inventory.ClosureRepository {
	return NewGormClosureRepository(r.tx)
}

// Ensure GormClosureTransactionScope implements TransactionScope
var _ appclosures.TransactionScope = (*GormClosureTransactionScope)(nil)

// Ensure gormClosureTransactionalRepositories implements TransactionalRepositories
var _ appclosures.TransactionalRepositories = (*gormClosureTransactionalRepositories)(nil)
