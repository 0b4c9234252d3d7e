package refdata

import (
	"context"
	"errors"

	"github.com/fisherp/backend/internal/domain/refdata"
	"github.com/fisherp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RefDataService manages the static reference data that batches and sales
// point at: branches and size grades. Both are small, rarely changing sets,
// so there is no pagination and no transaction scope here.
type RefDataService struct {
	branchRepo refdata.BranchRepository
	sizeRepo   refdata.SizeRepository
}

// NewRefDataService creates a new RefDataService
func NewRefDataService(branchRepo refdata.BranchRepository, sizeRepo refdata.SizeRepository) *RefDataService {
	return &RefDataService{
		branchRepo: branchRepo,
		sizeRepo:   sizeRepo,
	}
}

// CreateBranch creates a new branch. Branch names are unique.
func (s *RefDataService) CreateBranch(ctx context.Context, req CreateBranchRequest) (*BranchResponse, error) {
	existing, err := s.branchRepo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Branch with this name already exists")
	}

	branch, err := refdata.NewBranch(req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.branchRepo.Save(ctx, branch); err != nil {
		return nil, err
	}

	resp := ToBranchResponse(branch)
	return &resp, nil
}

// GetBranch returns one branch by ID
func (s *RefDataService) GetBranch(ctx context.Context, id uuid.UUID) (*BranchResponse, error) {
	branch, err := s.branchRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Branch not found")
		}
		return nil, err
	}
	resp := ToBranchResponse(branch)
	return &resp, nil
}

// ListBranches returns all branches ordered by name
func (s *RefDataService) ListBranches(ctx context.Context) ([]BranchResponse, error) {
	branches, err := s.branchRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]BranchResponse, 0, len(branches))
	for i := range branches {
		responses = append(responses, ToBranchResponse(&branches[i]))
	}
	return responses, nil
}

// CreateSize creates a new size grade. Size codes are unique.
func (s *RefDataService) CreateSize(ctx context.Context, req CreateSizeRequest) (*SizeResponse, error) {
	existing, err := s.sizeRepo.FindByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Size with this code already exists")
	}

	size, err := refdata.NewSize(req.Code, req.Description, req.SortOrder)
	if err != nil {
		return nil, err
	}
	if err := s.sizeRepo.Save(ctx, size); err != nil {
		return nil, err
	}

	resp := ToSizeResponse(size)
	return &resp, nil
}

// GetSize returns one size by ID
func (s *RefDataService) GetSize(ctx context.Context, id uuid.UUID) (*SizeResponse, error) {
	size, err := s.sizeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Size not found")
		}
		return nil, err
	}
	resp := ToSizeResponse(size)
	return &resp, nil
}

// ListSizes returns all sizes ordered by sort order then code
func (s *RefDataService) ListSizes(ctx context.Context) ([]SizeResponse, error) {
	sizes, err := s.sizeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]SizeResponse, 0, len(sizes))
	for i := range sizes {
		responses = append(responses, ToSizeResponse(&sizes[i]))
	}
	return responses, nil
}
