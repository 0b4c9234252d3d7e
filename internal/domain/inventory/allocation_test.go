package inventory

import (
	"testing"

	"github.com/fisherp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(pieces int, kg, avg float64) Candidate {
	return Candidate{
		BatchID:       uuid.New(),
		BatchCode:     "C-" + uuid.NewString()[:8],
		AvgKgPerPiece: decimal.NewFromFloat(avg),
		OnHandPieces:  pieces,
		OnHandKg:      decimal.NewFromFloat(kg),
	}
}

func TestAllocateRetailPieces(t *testing.T) {
	t.Run("depletes oldest batches first", func(t *testing.T) {
		cands := []Candidate{
			candidate(10, 5, 0.5),
			candidate(5, 3, 0.6),
			candidate(20, 10, 0.5),
		}

		slices, err := AllocateRetailPieces(cands, 12)
		require.NoError(t, err)

		require.Len(t, slices, 2)
		assert.Equal(t, cands[0].BatchID, slices[0].BatchID)
		assert.Equal(t, 10, slices[0].Pieces)
		assert.Equal(t, cands[1].BatchID, slices[1].BatchID)
		assert.Equal(t, 2, slices[1].Pieces)
	})

	t.Run("slice kg uses each batch's own average", func(t *testing.T) {
		cands := []Candidate{
			candidate(10, 5, 0.5),
			candidate(5, 3, 0.6),
		}

		slices, err := AllocateRetailPieces(cands, 12)
		require.NoError(t, err)
		require.Len(t, slices, 2)
		assert.True(t, slices[0].Kg.Equal(decimal.NewFromFloat(5)), "got %s", slices[0].Kg)
		assert.True(t, slices[1].Kg.Equal(decimal.NewFromFloat(1.2)), "got %s", slices[1].Kg)
	})

	t.Run("fails before producing slices when stock is insufficient", func(t *testing.T) {
		cands := []Candidate{
			candidate(10, 5, 0.5),
			candidate(5, 3, 0.6),
		}

		slices, err := AllocateRetailPieces(cands, 16)
		require.Error(t, err)
		assert.True(t, shared.IsInsufficientStock(err))
		assert.Nil(t, slices)
	})

	t.Run("rejects non-positive request", func(t *testing.T) {
		_, err := AllocateRetailPieces(nil, 0)
		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("exact fit consumes all candidates", func(t *testing.T) {
		cands := []Candidate{
			candidate(10, 5, 0.5),
			candidate(5, 3, 0.6),
		}
		slices, err := AllocateRetailPieces(cands, 15)
		require.NoError(t, err)
		require.Len(t, slices, 2)
		assert.Equal(t, 10, slices[0].Pieces)
		assert.Equal(t, 5, slices[1].Pieces)
	})
}

func TestAllocateWholesaleKg(t *testing.T) {
	t.Run("splits kg oldest first and distributes counted pieces", func(t *testing.T) {
		cands := []Candidate{
			candidate(40, 20, 0.5),
			candidate(40, 20, 0.5),
		}

		slices, err := AllocateWholesaleKg(cands, decimal.NewFromInt(30), 60, 2)
		require.NoError(t, err)

		require.Len(t, slices, 2)
		assert.True(t, slices[0].Kg.Equal(decimal.NewFromInt(20)))
		assert.True(t, slices[1].Kg.Equal(decimal.NewFromInt(10)))
		// 60 total pieces, 20/30 and 10/30 shares
		assert.Equal(t, 40, slices[0].Pieces)
		assert.Equal(t, 20, slices[1].Pieces)
		assert.Equal(t, 60, slices[0].Pieces+slices[1].Pieces)
		assert.Equal(t, 40, slices[0].PiecesSuggested)
		assert.Equal(t, 20, slices[1].PiecesSuggested)
		assert.False(t, slices[0].VarianceFlagged)
		assert.False(t, slices[1].VarianceFlagged)
	})

	t.Run("flags variance per slice", func(t *testing.T) {
		cands := []Candidate{
			candidate(40, 20, 0.5),
			candidate(40, 20, 0.5),
		}

		// 50 counted vs suggested 40+20: shares are 33 and 17
		slices, err := AllocateWholesaleKg(cands, decimal.NewFromInt(30), 50, 2)
		require.NoError(t, err)
		require.Len(t, slices, 2)
		assert.Equal(t, 50, slices[0].Pieces+slices[1].Pieces)
		assert.True(t, slices[0].VarianceFlagged)
		assert.True(t, slices[1].VarianceFlagged)
	})

	t.Run("fails when kg is insufficient", func(t *testing.T) {
		cands := []Candidate{
			candidate(40, 20, 0.5),
		}
		_, err := AllocateWholesaleKg(cands, decimal.NewFromInt(30), 60, 2)
		require.Error(t, err)
		assert.True(t, shared.IsInsufficientStock(err))
	})

	t.Run("requires one counted piece per batch used", func(t *testing.T) {
		cands := []Candidate{
			candidate(40, 20, 0.5),
			candidate(40, 20, 0.5),
		}
		_, err := AllocateWholesaleKg(cands, decimal.NewFromInt(30), 1, 2)
		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("single batch absorbs everything", func(t *testing.T) {
		cands := []Candidate{
			candidate(40, 20, 0.5),
		}
		slices, err := AllocateWholesaleKg(cands, decimal.NewFromInt(15), 30, 2)
		require.NoError(t, err)
		require.Len(t, slices, 1)
		assert.Equal(t, 30, slices[0].Pieces)
		assert.Equal(t, 30, slices[0].PiecesSuggested)
		assert.False(t, slices[0].VarianceFlagged)
	})
}

func TestDistributePieces(t *testing.T) {
	d := func(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

	t.Run("proportional split with exact remainder on last slice", func(t *testing.T) {
		got := DistributePieces([]decimal.Decimal{d(20), d(10)}, 60, 1)
		assert.Equal(t, []int{40, 20}, got)
	})

	t.Run("rounding residue lands on the final slice", func(t *testing.T) {
		got := DistributePieces([]decimal.Decimal{d(1), d(1), d(1)}, 10, 1)
		assert.Equal(t, 10, got[0]+got[1]+got[2])
		assert.Equal(t, []int{3, 3, 4}, got)
	})

	t.Run("all weight on last slice keeps minimums ahead of it", func(t *testing.T) {
		got := DistributePieces([]decimal.Decimal{d(0), d(0), d(10)}, 5, 1)
		assert.Equal(t, []int{1, 1, 3}, got)
	})

	t.Run("heavy first slice leaves room for the rest", func(t *testing.T) {
		got := DistributePieces([]decimal.Decimal{d(100), d(1), d(1)}, 4, 1)
		assert.Equal(t, []int{2, 1, 1}, got)
	})

	t.Run("single slice takes the whole budget", func(t *testing.T) {
		got := DistributePieces([]decimal.Decimal{d(7)}, 13, 1)
		assert.Equal(t, []int{13}, got)
	})

	t.Run("empty weights yield empty allocation", func(t *testing.T) {
		assert.Empty(t, DistributePieces(nil, 10, 1))
	})
}
