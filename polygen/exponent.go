package polygen

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"
)

// exponentSampler distributes a per-monomial degree budget across n
// variables. A symmetric Dirichlet draw shapes the spread (wide vs deep
// monomials); a deterministic repair step then enforces the exact row sum,
// so correctness never depends on the stochastic part.
type exponentSampler struct {
	dir   *distmv.Dirichlet
	probs []float64
}

func newExponentSampler(n int, concentration float64, src rand.Source) *exponentSampler {
	alpha := make([]float64, n)
	for i := range alpha {
		alpha[i] = concentration
	}
	return &exponentSampler{
		dir:   distmv.NewDirichlet(alpha, src),
		probs: make([]float64, n),
	}
}

// sample returns n non-negative integers summing exactly to budget.
// budget = 0 short-circuits to the zero vector without consuming randomness.
func (s *exponentSampler) sample(budget int) []int {
	n := len(s.probs)
	row := make([]int, n)
	if budget == 0 {
		return row
	}

	s.dir.Rand(s.probs)
	sum := 0
	for j, p := range s.probs {
		row[j] = int(math.Round(p * float64(budget)))
		sum += row[j]
	}
	s.repairResidual(row, budget-sum)
	return row
}

// repairResidual closes the rounding gap between the row sum and the budget
// one unit at a time: a positive residual increments the current largest
// entry, a negative one decrements the current largest (necessarily nonzero)
// entry. Integer ties break toward the larger Dirichlet weight, so repair is
// deterministic given the draw without biasing any fixed variable. Each step
// moves the residual toward zero by exactly one, so the loop always
// terminates and never drives an entry negative.
func (s *exponentSampler) repairResidual(row []int, residual int) {
	for ; residual > 0; residual-- {
		row[s.argMax(row)]++
	}
	for ; residual < 0; residual++ {
		row[s.argMax(row)]--
	}
}

func (s *exponentSampler) argMax(row []int) int {
	best := 0
	for j := 1; j < len(row); j++ {
		if row[j] > row[best] || (row[j] == row[best] && s.probs[j] > s.probs[best]) {
			best = j
		}
	}
	return best
}
