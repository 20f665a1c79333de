package polygen

import (
	"fmt"

	"golang.org/x/exp/rand"

	"polybench/logger"
)

// Instance is one generated polynomial benchmark. It is assembled in a
// single Generate call and never mutated afterwards.
type Instance struct {
	Delta    int       // requested difficulty
	M        int       // monomial count
	N        int       // variable count
	K        *Matrix   // m x n exponent matrix
	Coeffs   []float64 // one nonzero coefficient per monomial
	Baseline int       // recomputed naive cost, equals Delta on success
}

// RowDegrees returns the total degree of each monomial.
func (inst *Instance) RowDegrees() []int {
	out := make([]int, inst.M)
	for i := 0; i < inst.M; i++ {
		out[i] = inst.K.RowSum(i)
	}
	return out
}

// BaselineCost computes the naive per-monomial evaluation cost
// sum_i max(0, rowDegree(i) - 1) from an exponent matrix.
func BaselineCost(k *Matrix) int {
	cost := 0
	for i := 0; i < k.Rows(); i++ {
		if d := k.RowSum(i); d > 1 {
			cost += d - 1
		}
	}
	return cost
}

// Generate produces a random polynomial instance whose baseline cost equals
// delta exactly. The pipeline runs shape selection, degree-budget sampling,
// per-row exponent distribution and coefficient assembly, then recomputes
// the baseline from the finished matrix as a self-check. Any failure aborts
// the whole call; no partial instance is ever returned.
func Generate(delta int, opts ...GenOption) (*Instance, error) {
	o := gatherOpts(opts)
	if delta < 1 {
		return nil, &InputError{Reason: fmt.Sprintf("delta must be positive, got %d", delta)}
	}
	if err := o.Coeffs.validate(); err != nil {
		return nil, err
	}

	src, err := newSource(o.Seed)
	if err != nil {
		return nil, err
	}
	rng := rand.New(src)
	log := logger.Logger().With().Str("component", "polygen").Int("delta", delta).Logger()

	m, n, err := chooseShape(delta, rng, &o)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("m", m).Int("n", n).Msg("shape chosen")

	budgets, err := sampleBudgets(delta+m, m, rng)
	if err != nil {
		return nil, err
	}
	log.Debug().Ints("budgets", budgets).Msg("degree budgets sampled")

	k := NewMatrix(m, n)
	sampler := newExponentSampler(n, o.Concentration, src)
	for i, e := range budgets {
		k.setRow(i, sampler.sample(e))
	}
	enforceConstraints(k)

	coeffs := sampleCoeffs(m, *o.Coeffs, rng)

	baseline := BaselineCost(k)
	if baseline != delta {
		// Defect signal: upstream invariants guarantee equality, so this
		// must propagate, never be retried or corrected.
		return nil, &ConsistencyError{Delta: delta, Baseline: baseline}
	}
	log.Debug().Int("baseline", baseline).Msg("instance verified")

	return &Instance{
		Delta:    delta,
		M:        m,
		N:        n,
		K:        k,
		Coeffs:   coeffs,
		Baseline: baseline,
	}, nil
}
