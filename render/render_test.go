package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"polybench/polygen"
)

func mustMatrix(t *testing.T, rows [][]int) *polygen.Matrix {
	t.Helper()
	k, err := polygen.NewMatrixFromRows(rows)
	require.NoError(t, err)
	return k
}

func TestTextRender(t *testing.T) {
	cases := []struct {
		name   string
		rows   [][]int
		coeffs []float64
		want   string
	}{
		{
			name:   "plain sum",
			rows:   [][]int{{2, 0, 1}, {0, 1, 0}},
			coeffs: []float64{3, -2},
			want:   "3*x1^2*x3 - 2*x2",
		},
		{
			name:   "leading negative",
			rows:   [][]int{{1, 1}},
			coeffs: []float64{-4},
			want:   "-4*x1*x2",
		},
		{
			name:   "unit coefficients drop",
			rows:   [][]int{{3, 0}, {0, 2}},
			coeffs: []float64{1, -1},
			want:   "x1^3 - x2^2",
		},
		{
			name:   "constant monomial",
			rows:   [][]int{{0, 0}, {1, 0}},
			coeffs: []float64{7, 2},
			want:   "7 + 2*x1",
		},
		{
			name:   "real coefficient",
			rows:   [][]int{{1, 0}},
			coeffs: []float64{2.5},
			want:   "2.5*x1",
		},
	}
	for _, tc := range cases {
		got := Text{}.Render(mustMatrix(t, tc.rows), tc.coeffs)
		require.Equal(t, tc.want, got, tc.name)
	}
}

func TestTextRenderVarPrefix(t *testing.T) {
	k := mustMatrix(t, [][]int{{0, 2}})
	got := Text{VarPrefix: "y"}.Render(k, []float64{5})
	require.Equal(t, "5*y2^2", got)
}

func TestPolynomialRendersGeneratedInstance(t *testing.T) {
	inst, err := polygen.Generate(15, polygen.WithSeed(42))
	require.NoError(t, err)
	s := Polynomial(inst)
	require.NotEmpty(t, s)
	require.NotContains(t, s, "^0", "zero exponents must be elided")
	require.NotContains(t, s, "^1*", "unit exponents must drop the caret")
}
