package refdata

import (
	"time"

	"github.com/fisherp/backend/internal/domain/refdata"
	"github.com/google/uuid"
)

// CreateBranchRequest creates a new branch
type CreateBranchRequest struct {
	Name string `json:"name" binding:"required"`
}

// BranchResponse is the API representation of a branch
type BranchResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

// ToBranchResponse converts a branch to its API representation
func ToBranchResponse(b *refdata.Branch) BranchResponse {
	return BranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		Code:      b.Code(),
		CreatedAt: b.CreatedAt,
	}
}

// CreateSizeRequest creates a new size grade
type CreateSizeRequest struct {
	Code        string `json:"code" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// SizeResponse is the API representation of a size grade
type SizeResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToSizeResponse converts a size to its API representation
func ToSizeResponse(s *refdata.Size) SizeResponse {
	return SizeResponse{
		ID:          s.ID,
		Code:        s.Code,
		Description: s.Description,
		SortOrder:   s.SortOrder,
		CreatedAt:   s.CreatedAt,
	}
}
