package persistence

import (
	"context"

	appinventory "github.com/fisherp/backend/internal/application/inventory"
	"github.com/fisherp/backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// GormInventoryTransactionScope implements the inventory application
// TransactionScope using GORM transactions. Adjustments post atomically with
// the batch status check that guards them.
type GormInventoryTransactionScope struct {
	db *gorm.DB
}

// NewGormInventoryTransactionScope creates a new GormInventoryTransactionScope.
func NewGormInventoryTransactionScope(db *gorm.DB) *GormInventoryTransactionScope {
	return &GormInventoryTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormInventoryTransactionScope) Execute(ctx context.Context, fn func(repos appinventory.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormInventoryTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormInventoryTransactionalRepositories provides repositories scoped to one transaction.
type gormInventoryTransactionalRepositories struct {
	tx *gorm.DB
}

// BatchRepo returns the batch repository scoped to the current transaction.
func (r *gormInventoryTransactionalRepositories) BatchRepo() inventory.BatchRepository {
	return NewGormBatchRepository(r.tx)
}

// AdjustmentRepo returns the adjustment repository scoped to the current transaction.
func (r *gormInventoryTransactionalRepositories) AdjustmentRepo() inventory.AdjustmentRepository {
	return NewGormAdjustmentRepository(r.tx)
}

// Ensure GormInventoryTransactionScope implements TransactionScope
var _ appinventory.TransactionScope = (*GormInventoryTransactionScope)(nil)

// Ensure gormInventoryTransactionalRepositories implements TransactionalRepositories
var _ appinventory.TransactionalRepositories = (*gormInventoryTransactionalRepositories)(nil)
