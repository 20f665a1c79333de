package polygen

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestCoeffBoundsValidate(t *testing.T) {
	cases := []struct {
		name   string
		bounds CoeffBounds
		ok     bool
	}{
		{"default", DefaultCoeffBounds, true},
		{"zero-zero", CoeffBounds{Min: 0, Max: 0}, false},
		{"inverted", CoeffBounds{Min: 5, Max: -5}, false},
		{"point", CoeffBounds{Min: 3, Max: 3}, false},
		{"no nonzero integer", CoeffBounds{Min: -0.4, Max: 0.4}, false},
		{"only zero integer", CoeffBounds{Min: -0.9, Max: 0.9}, false},
		{"real narrow", CoeffBounds{Min: -0.4, Max: 0.4, Real: true}, true},
		{"positive only", CoeffBounds{Min: 1, Max: 4}, true},
		{"negative only", CoeffBounds{Min: -7, Max: -2}, true},
	}
	for _, tc := range cases {
		err := tc.bounds.validate()
		if tc.ok {
			require.NoError(t, err, tc.name)
			continue
		}
		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr, tc.name)
	}
}

func TestSampleCoeffsIntegerDraws(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	b := CoeffBounds{Min: -3, Max: 3}
	for _, c := range sampleCoeffs(500, b, rng) {
		require.NotZero(t, c)
		require.GreaterOrEqual(t, c, b.Min)
		require.LessOrEqual(t, c, b.Max)
		require.Equal(t, c, float64(int64(c)))
	}
}

func TestSampleCoeffsRealDraws(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	b := CoeffBounds{Min: 0.1, Max: 0.2, Real: true}
	for _, c := range sampleCoeffs(500, b, rng) {
		require.NotZero(t, c)
		require.GreaterOrEqual(t, c, b.Min)
		require.LessOrEqual(t, c, b.Max)
	}
}

func TestSampleCoeffsRejectsZeroDraws(t *testing.T) {
	// A range where zero is the most likely single integer still never
	// emits it.
	rng := rand.New(rand.NewSource(13))
	for _, c := range sampleCoeffs(1000, CoeffBounds{Min: -1, Max: 1}, rng) {
		require.NotZero(t, c)
	}
}
