package inventory

import (
	"fmt"

	"github.com/fisherp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Candidate is an open batch eligible for FIFO allocation, annotated with its
// size-level on-hand position. Candidates are expected in FIFO order (oldest
// receipt date first); candidates without positive stock in both units must
// already be filtered out.
type Candidate struct {
	BatchID       uuid.UUID       `json:"batch_id"`
	BatchCode     string          `json:"batch_code"`
	AvgKgPerPiece decimal.Decimal `json:"avg_kg_per_piece"`
	OnHandPieces  int             `json:"on_hand_pieces"`
	OnHandKg      decimal.Decimal `json:"on_hand_kg"`
}

// RetailSlice is one per-batch posting of a retail FIFO allocation
type RetailSlice struct {
	BatchID   uuid.UUID
	BatchCode string
	Pieces    int
	Kg        decimal.Decimal
}

// WholesaleSlice is one per-batch posting of a wholesale FIFO allocation.
// PiecesSuggested and VarianceFlagged are computed independently per slice
// against the slice's own batch fingerprint.
type WholesaleSlice struct {
	BatchID         uuid.UUID
	BatchCode       string
	Kg              decimal.Decimal
	Pieces          int
	PiecesSuggested int
	VarianceFlagged bool
}

// AllocateRetailPieces splits a retail piece request across candidates,
// oldest batch first. Total availability is checked before any slice is
// produced, so an insufficient request yields no partial allocation. Slice kg
// is derived from each batch's own average fingerprint, not a global average.
func AllocateRetailPieces(candidates []Candidate, piecesRequested int) ([]RetailSlice, error) {
	if piecesRequested <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Requested pieces must be positive")
	}

	available := 0
	for _, c := range candidates {
		available += c.OnHandPieces
	}
	if available < piecesRequested {
		return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
			fmt.Sprintf("Requested %d pieces but only %d on hand across open batches", piecesRequested, available))
	}

	remaining := piecesRequested
	slices := make([]RetailSlice, 0)
	for _, c := range candidates {
		if remaining == 0 {
			break
		}
		take := c.OnHandPieces
		if take > remaining {
			take = remaining
		}
		if take <= 0 {
			continue
		}
		slices = append(slices, RetailSlice{
			BatchID:   c.BatchID,
			BatchCode: c.BatchCode,
			Pieces:    take,
			Kg:        decimal.NewFromInt(int64(take)).Mul(c.AvgKgPerPiece),
		})
		remaining -= take
	}
	return slices, nil
}

// AllocateWholesaleKg splits a wholesale kg request across candidates, oldest
// batch first, then distributes the clerk's counted pieces over the batches
// actually used, proportionally to each slice's share of the allocated kg.
// The final slice absorbs the rounding remainder exactly.
func AllocateWholesaleKg(
	candidates []Candidate,
	kgRequested decimal.Decimal,
	piecesCounted int,
	tolerancePieces int,
) ([]WholesaleSlice, error) {
	if kgRequested.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Requested kg must be positive")
	}
	if piecesCounted <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Counted pieces must be positive")
	}
	if tolerancePieces < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Tolerance cannot be negative")
	}

	// Allocate kg oldest-first.
	remaining := kgRequested
	used := make([]Candidate, 0)
	kgTaken := make([]decimal.Decimal, 0)
	for _, c := range candidates {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		take := decimal.Min(remaining, c.OnHandKg)
		if take.LessThanOrEqual(decimal.Zero) {
			continue
		}
		used = append(used, c)
		kgTaken = append(kgTaken, take)
		remaining = remaining.Sub(take)
	}
	if remaining.GreaterThan(decimal.Zero) {
		total := kgRequested.Sub(remaining)
		return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
			fmt.Sprintf("Requested %s kg but only %s kg on hand across open batches", kgRequested.String(), total.String()))
	}

	// Every batch slice needs at least one counted piece.
	if piecesCounted < len(used) {
		return nil, shared.NewDomainError("INVALID_QUANTITY",
			fmt.Sprintf("Counted pieces (%d) must cover at least one piece per batch used (%d)", piecesCounted, len(used)))
	}

	pieces := DistributePieces(kgTaken, piecesCounted, 1)

	slices := make([]WholesaleSlice, 0, len(used))
	for i, c := range used {
		suggested := SuggestPieces(kgTaken[i], c.AvgKgPerPiece)
		slices = append(slices, WholesaleSlice{
			BatchID:         c.BatchID,
			BatchCode:       c.BatchCode,
			Kg:              kgTaken[i],
			Pieces:          pieces[i],
			PiecesSuggested: suggested,
			VarianceFlagged: varianceExceeded(pieces[i], suggested, tolerancePieces),
		})
	}
	return slices, nil
}

// DistributePieces splits an integer piece budget across weighted slices.
// Each non-final slice receives its weight's share of the budget rounded to
// nearest, clamped so that it gets at least perSliceMin and leaves at least
// perSliceMin for every slice after it; the final slice takes the exact
// remainder so no rounding residue is lost. The caller must guarantee
// total >= len(weights) * perSliceMin.
func DistributePieces(weights []decimal.Decimal, total, perSliceMin int) []int {
	n := len(weights)
	out := make([]int, n)
	if n == 0 {
		return out
	}

	totalWeight := decimal.Zero
	for _, w := range weights {
		totalWeight = totalWeight.Add(w)
	}

	remaining := total
	for i := 0; i < n-1; i++ {
		share := perSliceMin
		if totalWeight.IsPositive() {
			share = int(decimal.NewFromInt(int64(total)).Mul(weights[i]).Div(totalWeight).Round(0).IntPart())
		}
		maxShare := remaining - (n-1-i)*perSliceMin
		if share < perSliceMin {
			share = perSliceMin
		}
		if share > maxShare {
			share = maxShare
		}
		out[i] = share
		remaining -= share
	}
	out[n-1] = remaining
	return out
}
