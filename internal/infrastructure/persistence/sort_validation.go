package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// BatchSortFields contains allowed sort fields for batches
var BatchSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"batch_code":   true,
	"branch_id":    true,
	"receipt_date": true,
	"status":       true,
	"initial_kg":   true,
	"closed_at":    true,
}

// SaleSortFields contains allowed sort fields for sales
var SaleSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"batch_id":    true,
	"channel":     true,
	"sale_ts":     true,
	"pieces_sold": true,
	"kg_sold":     true,
	"total_price": true,
}

// AdjustmentSortFields contains allowed sort fields for inventory adjustments
var AdjustmentSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"batch_id":   true,
	"reason":     true,
	"ts":         true,
}

// ClosureSortFields contains allowed sort fields for batch closures
var ClosureSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"batch_id":   true,
	"closed_ts":  true,
	"loss_kg":    true,
	"loss_pct":   true,
}

// BranchSortFields contains allowed sort fields for branches
var BranchSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
}

// SizeSortFields contains allowed sort fields for size classes
var SizeSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"sort_order": true,
}
