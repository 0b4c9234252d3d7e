package refdata

import (
	"strings"

	"github.com/fisherp/backend/internal/domain/shared"
)

// Branch represents a selling location. Branches are static reference data;
// batches and sales reference them by ID.
type Branch struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(200);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Branch) TableName() string {
	return "branches"
}

// NewBranch creates a new branch
func NewBranch(name string) (*Branch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Branch name cannot be empty")
	}
	return &Branch{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// Code derives the short branch code used in generated batch codes.
// Multi-word names take the first 3 letters of each word, concatenated and
// capped at 8 characters; single-word names take the first 6 characters.
// The result is upper-cased.
func (b *Branch) Code() string {
	words := strings.Fields(b.Name)
	if len(words) == 0 {
		return ""
	}
	if len(words) == 1 {
		w := words[0]
		if len(w) > 6 {
			w = w[:6]
		}
		return strings.ToUpper(w)
	}
	var sb strings.Builder
	for _, w := range words {
		if len(w) > 3 {
			w = w[:3]
		}
		sb.WriteString(w)
	}
	code := sb.String()
	if len(code) > 8 {
		code = code[:8]
	}
	return strings.ToUpper(code)
}
