package inventory

import (
	"github.com/shopspring/decimal"
)

// QuantityTotals is a summed dual-unit quantity (pieces and kg) over a set of
// movement rows.
type QuantityTotals struct {
	Pieces int
	Kg     decimal.Decimal
}

// OnHand is the derived stock position of a batch or batch line. It is never
// stored; it is recomputed on demand by folding immutable movement rows over
// the frozen initial figures, so repeated computation with no writes in
// between always yields identical results.
type OnHand struct {
	Pieces int             `json:"pieces"`
	Kg     decimal.Decimal `json:"kg"`
}

// ComputeOnHand folds sale and adjustment totals over initial figures:
// initial - sold + adjusted, in both units.
func ComputeOnHand(initialPieces int, initialKg decimal.Decimal, sold, adjusted QuantityTotals) OnHand {
	return OnHand{
		Pieces: initialPieces - sold.Pieces + adjusted.Pieces,
		Kg:     initialKg.Sub(sold.Kg).Add(adjusted.Kg),
	}
}

// HasStock returns true if both units are positive
func (o OnHand) HasStock() bool {
	return o.Pieces > 0 && o.Kg.IsPositive()
}

// IsDepleted returns true when pieces are exactly zero and kg is within
// epsilon of zero.
func (o OnHand) IsDepleted(epsilonKg decimal.Decimal) bool {
	return o.Pieces == 0 && o.Kg.Abs().LessThanOrEqual(epsilonKg)
}
