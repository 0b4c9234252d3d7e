package refdata

import (
	"strings"
	"unicode"

	"github.com/fisherp/backend/internal/domain/shared"
)

// Size represents a fish size grade (Size 2, Size 3, ...). Sizes are static
// reference data ordered by SortOrder for display.
type Size struct {
	shared.BaseEntity
	Code        string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Description string `gorm:"type:varchar(200)"`
	SortOrder   int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Size) TableName() string {
	return "sizes"
}

// NewSize creates a new size grade
func NewSize(code, description string, sortOrder int) (*Size, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Size code cannot be empty")
	}
	return &Size{
		BaseEntity:  shared.NewBaseEntity(),
		Code:        code,
		Description: description,
		SortOrder:   sortOrder,
	}, nil
}

// ShortCode returns the size code normalized for batch code generation:
// trimmed, upper-cased, with non-alphanumeric characters stripped
// ("SIZE_2" becomes "SIZE2").
func (s *Size) ShortCode() string {
	var sb strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(s.Code)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
