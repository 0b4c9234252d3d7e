package persistence

import (
	"context"

	appbatches "github.com/fisherp/backend/internal/application/batches"
	"github.com/fisherp/backend/internal/domain/inventory"
	"github.com/fisherp/backend/internal/domain/refdata"
	"gorm.io/gorm"
)

// GormBatchTransactionScope implements the batch application TransactionScope
// using GORM transactions. It provides atomic execution of batch creation
// together with the reference data lookups that validate it.
type GormBatchTransactionScope struct {
	db *gorm.DB
}

// NewGormBatchTransactionScope creates a new GormBatchTransactionScope.
func NewGormBatchTransactionScope(db *gorm.DB) *GormBatchTransactionScope {
	return &GormBatchTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormBatchTransactionScope) Execute(ctx context.Context, fn func(repos appbatches.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormBatchTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormBatchTransactionalRepositories provides repositories scoped to one transaction.
type gormBatchTransactionalRepositories struct {
	tx *gorm.DB
}

// BatchRepo returns the batch repository scoped to the current transaction.
func (r *gormBatchTransactionalRepositories) BatchRepo() inventory.BatchRepository {
	return NewGormBatchRepository(r.tx)
}

// BranchRepo returns the branch repository scoped to the current transaction.
func (r *gormBatchTransactionalRepositories) BranchRepo() refdata.BranchRepository {
	return NewGormBranchRepository(r.tx)
}

// SizeRepo returns the size repository scoped to the current transaction.
func (r *gormBatchTransactionalRepositories) SizeRepo() refdata.SizeRepository {
	return NewGormSizeRepository(r.tx)
}

// Ensure GormBatchTransactionScope implements TransactionScope
var _ appbatches.TransactionScope = (*GormBatchTransactionScope)(nil)

// Ensure gormBatchTransactionalRepositories implements TransactionalRepositories
var _ appbatches.TransactionalRepositories = (*gormBatchTransactionalRepositories)(nil)
