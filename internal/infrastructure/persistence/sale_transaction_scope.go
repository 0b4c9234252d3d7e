package persistence

import (
	"context"

	appsales "github.com/fisherp/backend/internal/application/sales"
	"github.com/fisherp/backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// GormSaleTransactionScope implements the sales application TransactionScope
// using GORM transactions. Allocation reads and the sale rows they produce
// commit or roll back as one unit.
type GormSaleTransactionScope struct {
	db *gorm.DB
}

// NewGormSaleTransactionScope creates a new GormSaleTransactionScope.
func NewGormSaleTransactionScope(db *gorm.DB) *GormSaleTransactionScope {
	return &GormSaleTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormSaleTransactionScope) Execute(ctx context.Context, fn func(repos appsales.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormSaleTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormSaleTransactionalRepositories provides repositories scoped to one transaction.
type gormSaleTransactionalRepositories struct {
	tx *gorm.DB
}

// BatchRepo returns the batch repository scoped to the current transaction.
func (r *gormSaleTransactionalRepositories) BatchRepo() inventory.BatchRepository {
	return NewGormBatchRepository(r.tx)
}

// SaleRepo returns the sale repository scoped to the current transaction.
func (r *gormSaleTransactionalRepositories) SaleRepo() inventory.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

// Ensure GormSaleTransactionScope implements TransactionScope
var _ appsales.TransactionScope = (*GormSaleTransactionScope)(nil)

// Ensure gormSaleTransactionalRepositories implements TransactionalRepositories
var _ appsales.TransactionalRepositories = (*gormSaleTransactionalRepositories)(nil)
