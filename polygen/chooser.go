package polygen

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// ChooseShape picks the monomial count m and variable count n for a given
// difficulty, using the same heuristic Generate runs internally. The same
// seed yields the same (alpha, beta) draw and therefore the same shape.
func ChooseShape(delta int, opts ...GenOption) (m, n int, err error) {
	o := gatherOpts(opts)
	if delta < 1 {
		return 0, 0, &InputError{Reason: fmt.Sprintf("delta must be positive, got %d", delta)}
	}
	src, err := newSource(o.Seed)
	if err != nil {
		return 0, 0, err
	}
	return chooseShape(delta, rand.New(src), &o)
}

// chooseShape draws the density factor alpha and the width/depth factor beta
// and derives:
//
//	m = max(1, floor(alpha * sqrt(delta)))
//	n = max(2, floor(sqrt(delta) / beta))
//
// Both dimensions scale with sqrt(delta), so the exponent matrix stays
// sub-linear in the difficulty.
func chooseShape(delta int, rng *rand.Rand, o *GenOpts) (int, int, error) {
	alpha := o.AlphaMin + rng.Float64()*(o.AlphaMax-o.AlphaMin)
	beta := o.BetaMin + rng.Float64()*(o.BetaMax-o.BetaMin)

	root := math.Sqrt(float64(delta))
	m := int(math.Floor(alpha * root))
	if m < 1 {
		m = 1
	}
	n := int(math.Floor(root / beta))
	if n < 2 {
		n = 2
	}
	if err := validateShape(delta, m, n); err != nil {
		return 0, 0, err
	}
	return m, n, nil
}

// validateShape checks feasibility of a degree-budget assignment: m parts
// >= 1 summing to delta+m exist whenever delta >= 1, and a single variable
// can carry an arbitrarily high exponent, so n places no upper bound.
// Unreachable after the clamps above; kept as a guard against misconfigured
// alpha/beta ranges.
func validateShape(delta, m, n int) error {
	if m < 1 || n < 2 || delta < 1 {
		return &ShapeError{Delta: delta, M: m, N: n}
	}
	return nil
}
