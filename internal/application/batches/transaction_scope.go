package batches

import (
	"context"

	"github.com/fisherp/backend/internal/domain/inventory"
	"github.com/fisherp/backend/internal/domain/refdata"
)

// TransactionScope provides transactional access to the repositories batch
// intake needs. Code sequencing and the batch insert must share one
// transaction so two concurrent intakes cannot claim the same sequence.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the batch intake repositories
// within a transaction. All repositories share the same underlying database
// transaction.
type TransactionalRepositories interface {
	// BatchRepo returns the batch repository scoped to the current transaction
	BatchRepo() inventory.BatchRepository
	// BranchRepo returns the branch repository scoped to the current transaction
	BranchRepo() refdata.BranchRepository
	// SizeRepo returns the size repository scoped to the current transaction
	SizeRepo() refdata.SizeRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for tests.
type NoOpTransactionScope struct {
	batchRepo  inventory.BatchRepository
	branchRepo refdata.BranchRepository
	sizeRepo   refdata.SizeRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	batchRepo inventory.BatchRepository,
	branchRepo refdata.BranchRepository,
	sizeRepo refdata.SizeRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		batchRepo:  batchRepo,
		branchRepo: branchRepo,
		sizeRepo:   sizeRepo,
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

// BranchRepo returns the branch repository.
func (s *NoOpTransactionScope) BranchRepo() refdata.BranchRepository {
	return s.branchRepo
}

// SizeRepo returns the size repository.
func (s *NoOpTransactionScope) SizeRepo() refdata.SizeRepository {
	return s.sizeRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
