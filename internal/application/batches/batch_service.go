package batches

import (
	"context"

	"github.com/fisherp/backend/internal/domain/inventory"
	"github.com/fisherp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchService handles batch intake and lookup
type BatchService struct {
	batchRepo inventory.BatchRepository
	txScope   TransactionScope
}

// NewBatchService creates a new BatchService
func NewBatchService(batchRepo inventory.BatchRepository, txScope TransactionScope) *BatchService {
	return &BatchService{
		batchRepo: batchRepo,
		txScope:   txScope,
	}
}

// CreateBatch creates one open batch with an explicit, caller-supplied code
func (s *BatchService) CreateBatch(ctx context.Context, req CreateBatchRequest) (*BatchResponse, error) {
	lines := make([]inventory.LineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, inventory.LineInput{
			SizeID: l.SizeID,
			Pieces: l.Pieces,
			Kg:     l.Kg,
		})
	}

	batch, err := inventory.NewBatch(
		req.BatchCode,
		req.ReceiptDate,
		req.BranchID,
		req.Supplier,
		req.Notes,
		req.BuyPricePerKg,
		lines,
	)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.BranchRepo().FindByID(ctx, req.BranchID); err != nil {
			return err
		}
		existing, err := repos.BatchRepo().FindByCode(ctx, batch.BatchCode)
		if err != nil && !shared.IsNotFound(err) {
			return err
		}
		if existing != nil {
			return shared.NewDomainError("ALREADY_EXISTS", "Batch code already in use: "+batch.BatchCode)
		}
		return repos.BatchRepo().Save(ctx, batch)
	})
	if err != nil {
		return nil, err
	}

	resp := ToBatchResponse(batch)
	return &resp, nil
}

// CreateBatchesFromPurchase records a purchase intake. Every line with
// positive pieces and kg becomes its own single-size batch with a generated
// code; empty lines are skipped. Codes follow
// {BRANCH}-{SIZE}-{YYYYMMDD}-{SEQ} where SEQ continues from the existing
// count under that prefix, so two lines of the same size on the same day get
// consecutive sequence numbers.
func (s *BatchService) CreateBatchesFromPurchase(ctx context.Context, req CreatePurchaseRequest) ([]BatchResponse, error) {
	if len(req.Lines) == 0 {
		return nil, shared.NewDomainError("INVALID_LINES", "Purchase must have at least one line")
	}

	var created []*inventory.Batch
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		branch, err := repos.BranchRepo().FindByID(ctx, req.BranchID)
		if err != nil {
			return err
		}

		// Sequence offsets for prefixes already claimed inside this purchase.
		claimed := make(map[string]int64)

		for _, line := range req.Lines {
			if line.Pieces <= 0 || line.Kg.LessThanOrEqual(decimal.Zero) {
				continue
			}

			size, err := repos.SizeRepo().FindByID(ctx, line.SizeID)
			if err != nil {
				return err
			}

			prefix := inventory.BatchCodePrefix(branch.Code(), size.ShortCode(), req.ReceiptDate)
			count, err := repos.BatchRepo().CountByCodePrefix(ctx, prefix)
			if err != nil {
				return err
			}
			seq := count + claimed[prefix] + 1
			claimed[prefix]++

			batch, err := inventory.NewBatch(
				inventory.FormatBatchCode(prefix, int(seq)),
				req.ReceiptDate,
				req.BranchID,
				req.Supplier,
				req.Notes,
				line.BuyPricePerKg,
				[]inventory.LineInput{{SizeID: line.SizeID, Pieces: line.Pieces, Kg: line.Kg}},
			)
			if err != nil {
				return err
			}
			if err := repos.BatchRepo().Save(ctx, batch); err != nil {
				return err
			}
			created = append(created, batch)
		}

		if len(created) == 0 {
			return shared.NewDomainError("INVALID_LINES", "Purchase has no line with positive pieces and kg")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	responses := make([]BatchResponse, 0, len(created))
	for _, b := range created {
		responses = append(responses, ToBatchResponse(b))
	}
	return responses, nil
}

// GetBatch retrieves a batch by ID
func (s *BatchService) GetBatch(ctx context.Context, id uuid.UUID) (*BatchResponse, error) {
	batch, err := s.batchRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToBatchResponse(batch)
	return &resp, nil
}

// GetBatchByCode retrieves a batch by its unique code
func (s *BatchService) GetBatchByCode(ctx context.Context, code string) (*BatchResponse, error) {
	batch, err := s.batchRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	resp := ToBatchResponse(batch)
	return &resp, nil
}

// ListOpenBatches lists open batches, newest receipt first
func (s *BatchService) ListOpenBatches(ctx context.Context, filter shared.Filter) (*shared.Paginated[BatchResponse], error) {
	items, err := s.batchRepo.ListOpen(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.batchRepo.CountOpen(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]BatchResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToBatchResponse(&items[i]))
	}
	page := shared.NewPaginated(responses, total, filter.Page, filter.Limit())
	return &page, nil
}
