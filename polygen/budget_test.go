package polygen

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestSampleBudgetsComposition(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("m positive parts summing to T", prop.ForAll(
		func(total, count int, seed uint64) bool {
			if count > total {
				count = total
			}
			rng := rand.New(rand.NewSource(seed))
			parts, err := sampleBudgets(total, count, rng)
			if err != nil {
				return false
			}
			if len(parts) != count {
				return false
			}
			sum := 0
			for _, p := range parts {
				if p < 1 {
					return false
				}
				sum += p
			}
			return sum == total
		},
		gen.IntRange(1, 500),
		gen.IntRange(1, 500),
		gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSampleBudgetsSinglePart(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	parts, err := sampleBudgets(16, 1, rng)
	require.NoError(t, err)
	require.Equal(t, []int{16}, parts)
}

func TestSampleBudgetsInfeasible(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := sampleBudgets(3, 4, rng)
	var budgetErr *BudgetError
	require.ErrorAs(t, err, &budgetErr)
	require.Equal(t, 3, budgetErr.Total)
	require.Equal(t, 4, budgetErr.Count)
}

func TestSampleBudgetsTightTotal(t *testing.T) {
	// T == m forces every part to exactly 1.
	rng := rand.New(rand.NewSource(7))
	parts, err := sampleBudgets(5, 5, rng)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 1, 1, 1}, parts)
}

func TestSampleDistinctDenseRange(t *testing.T) {
	// k close to max exercises the Fisher-Yates path.
	rng := rand.New(rand.NewSource(3))
	vals := sampleDistinct(9, 9, rng)
	require.Len(t, vals, 9)
	seen := make(map[int]bool)
	for _, v := range vals {
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 9)
		require.False(t, seen[v], "duplicate cut point %d", v)
		seen[v] = true
	}
}
