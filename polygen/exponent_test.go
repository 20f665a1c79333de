package polygen

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func rowSumOK(row []int, budget, n int) bool {
	if len(row) != n {
		return false
	}
	sum := 0
	for _, v := range row {
		if v < 0 {
			return false
		}
		sum += v
	}
	return sum == budget
}

func TestExponentSamplerSumInvariant(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("n non-negative entries summing to E", prop.ForAll(
		func(budget, n int, seed uint64) bool {
			s := newExponentSampler(n, DefaultConcentration, rand.NewSource(seed))
			return rowSumOK(s.sample(budget), budget, n)
		},
		gen.IntRange(0, 1000),
		gen.IntRange(1, 64),
		gen.UInt64(),
	))

	properties.Property("repair survives sparse concentrations", prop.ForAll(
		func(budget, n int, seed uint64) bool {
			s := newExponentSampler(n, 0.05, rand.NewSource(seed))
			return rowSumOK(s.sample(budget), budget, n)
		},
		gen.IntRange(1, 200),
		gen.IntRange(2, 32),
		gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestExponentSamplerUnitBudget(t *testing.T) {
	// E = 1 must land all degree on exactly one variable.
	for seed := uint64(0); seed < 100; seed++ {
		s := newExponentSampler(8, DefaultConcentration, rand.NewSource(seed))
		row := s.sample(1)
		nonzero := 0
		for _, v := range row {
			if v != 0 {
				require.Equal(t, 1, v)
				nonzero++
			}
		}
		require.Equal(t, 1, nonzero)
	}
}

func TestExponentSamplerZeroBudget(t *testing.T) {
	s := newExponentSampler(5, DefaultConcentration, rand.NewSource(9))
	require.Equal(t, []int{0, 0, 0, 0, 0}, s.sample(0))
}

func TestExponentSamplerLargeBudget(t *testing.T) {
	// E far above n: entries stay exact, no overflow or drift.
	s := newExponentSampler(3, DefaultConcentration, rand.NewSource(4))
	require.True(t, rowSumOK(s.sample(1_000_000), 1_000_000, 3))
}

func TestExponentSamplerSingleVariable(t *testing.T) {
	s := newExponentSampler(1, DefaultConcentration, rand.NewSource(2))
	require.Equal(t, []int{42}, s.sample(42))
}
