package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBatchCodeGeneration(t *testing.T) {
	date := time.Date(2026, 2, 18, 0, 0, 0, 0, time.UTC)

	prefix := BatchCodePrefix("NAIEAS", "SIZE2", date)
	assert.Equal(t, "NAIEAS-SIZE2-20260218-", prefix)

	assert.Equal(t, "NAIEAS-SIZE2-20260218-001", FormatBatchCode(prefix, 1))
	assert.Equal(t, "NAIEAS-SIZE2-20260218-002", FormatBatchCode(prefix, 2))
	assert.Equal(t, "NAIEAS-SIZE2-20260218-120", FormatBatchCode(prefix, 120))
}
