package closures

import (
	"context"

	"github.com/fisherp/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to the repositories batch
// closure needs. The depletion check, the auto-zero adjustment, the closure
// row and the status flip must commit or roll back together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the closure repositories
// within a transaction.
type TransactionalRepositories interface {
	// BatchRepo returns the batch repository scoped to the current transaction
	BatchRepo() inventory.BatchRepository
	// SaleRepo returns the sale repository scoped to the current transaction
	SaleRepo() inventory.SaleRepository
	// AdjustmentRepo returns the adjustment repository scoped to the current transaction
	AdjustmentRepo() inventory.AdjustmentRepository
	// ClosureRepo returns the closure repository scoped to the current transaction
	ClosureRepo() inventory.ClosureRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for tests.
type NoOpTransactionScope struct {
	batchRepo   inventory.BatchRepository
	saleRepo    inventory.SaleRepository
	adjRepo     inventory.AdjustmentRepository
	closureRepo inventory.ClosureRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	batchRepo inventory.BatchRepository,
	saleRepo inventory.SaleRepository,
	adjRepo inventory.AdjustmentRepository,
	closureRepo inventory.ClosureRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		batchRepo:   batchRepo,
		saleRepo:    saleRepo,
		adjRepo:     adjRepo,
		closureRepo: closureRepo,
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

// AdjustmentRepo returns the adjustment repository.
func (s *NoOpTransactionScope) AdjustmentRepo() inventory.AdjustmentRepository {
	return s.adjRepo
}

// ClosureRepo returns the closure repository.
func (s *NoOpTransactionScope) ClosureRepo() inventory.ClosureRepository {
	return s.closureRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
