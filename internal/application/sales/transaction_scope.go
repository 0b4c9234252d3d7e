package sales

import (
	"context"

	"github.com/fisherp/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to the repositories sale
// posting needs. FIFO allocation reads candidate stock and writes sale rows
// in one transaction so two concurrent sales cannot both deplete the same
// batch slice.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the sale posting repositories
// within a transaction.
type TransactionalRepositories interface {
	// BatchRepo returns the batch repository scoped to the current transaction
	BatchRepo() inventory.BatchRepository
	// SaleRepo returns the sale repository scoped to the current transaction
	SaleRepo() inventory.SaleRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for tests.
type NoOpTransactionScope struct {
	batchRepo inventory.BatchRepository
	saleRepo  inventory.SaleRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	batchRepo inventory.BatchRepository,
	saleRepo inventory.SaleRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		batchRepo: batchRepo,
		saleRepo:  saleRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// BatchRepo returns the batch repository.
func (s *NoOpTransactionScope) BatchRepo() inventory.BatchRepository {
	return s.batchRepo
}

// SaleRepo returns the sale repository.
func (s *NoOpTransactionScope) SaleRepo() inventory.SaleRepository {
	return s.saleRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
