package inventory

import (
	"fmt"
	"time"
)

// BatchCodePrefix builds the deterministic prefix for generated batch codes:
// "{BRANCH_CODE}-{SIZE_CODE}-{YYYYMMDD}-". The sequence suffix is appended
// with FormatBatchCode once the count of existing codes under the prefix is
// known.
func BatchCodePrefix(branchCode, sizeCode string, receiptDate time.Time) string {
	return fmt.Sprintf("%s-%s-%s-", branchCode, sizeCode, receiptDate.Format("20060102"))
}

// FormatBatchCode appends the zero-padded sequence number to a prefix.
// The sequence is 1 + the count of existing batch codes with that prefix.
func FormatBatchCode(prefix string, seq int) string {
	return fmt.Sprintf("%s%03d", prefix, seq)
}
