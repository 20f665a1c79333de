package polygen

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix is an m x n non-negative integer exponent matrix in row-major
// order. Row i holds the per-variable exponents of monomial i.
type Matrix struct {
	rows, cols int
	data       []int
}

// NewMatrix allocates a zeroed rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]int, rows*cols)}
}

// NewMatrixFromRows builds a matrix from explicit rows. All rows must share
// one length and every entry must be non-negative.
func NewMatrixFromRows(rows [][]int) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("polygen: matrix needs at least one row and one column")
	}
	k := NewMatrix(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != k.cols {
			return nil, fmt.Errorf("polygen: row %d has %d entries, want %d", i, len(row), k.cols)
		}
		for j, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("polygen: negative exponent %d at (%d, %d)", v, i, j)
			}
		}
		k.setRow(i, row)
	}
	return k, nil
}

// Rows returns the monomial count m.
func (k *Matrix) Rows() int { return k.rows }

// Cols returns the variable count n.
func (k *Matrix) Cols() int { return k.cols }

// At returns the exponent of variable j in monomial i.
func (k *Matrix) At(i, j int) int { return k.data[i*k.cols+j] }

// Row returns a copy of row i.
func (k *Matrix) Row(i int) []int {
	out := make([]int, k.cols)
	copy(out, k.data[i*k.cols:(i+1)*k.cols])
	return out
}

// RowSum returns the total degree of monomial i.
func (k *Matrix) RowSum(i int) int {
	sum := 0
	for _, v := range k.data[i*k.cols : (i+1)*k.cols] {
		sum += v
	}
	return sum
}

// ColSums returns per-variable coverage across all monomials.
func (k *Matrix) ColSums() []int {
	sums := make([]int, k.cols)
	for i := 0; i < k.rows; i++ {
		for j := 0; j < k.cols; j++ {
			sums[j] += k.data[i*k.cols+j]
		}
	}
	return sums
}

// Clone returns a deep copy.
func (k *Matrix) Clone() *Matrix {
	out := NewMatrix(k.rows, k.cols)
	copy(out.data, k.data)
	return out
}

// Equal reports whether both matrices have the same shape and entries.
func (k *Matrix) Equal(other *Matrix) bool {
	if other == nil || k.rows != other.rows || k.cols != other.cols {
		return false
	}
	for i, v := range k.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

func (k *Matrix) setRow(i int, row []int) {
	copy(k.data[i*k.cols:(i+1)*k.cols], row)
}

// rowKey encodes row i for duplicate detection.
func (k *Matrix) rowKey(i int) string {
	var b strings.Builder
	for j := 0; j < k.cols; j++ {
		if j > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(k.data[i*k.cols+j]))
	}
	return b.String()
}

// String pretty-prints entries right-aligned, one bracketed row per line.
func (k *Matrix) String() string {
	if k.rows == 0 || k.cols == 0 {
		return "(empty matrix)"
	}
	width := 1
	for _, v := range k.data {
		if w := len(strconv.Itoa(v)); w > width {
			width = w
		}
	}
	var b strings.Builder
	for i := 0; i < k.rows; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		for j := 0; j < k.cols; j++ {
			if j > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%*d", width, k.data[i*k.cols+j])
		}
		b.WriteByte(']')
	}
	return b.String()
}

// moveUnit shifts one exponent unit within row i from column p to column q,
// keeping the row sum (and therefore the baseline) unchanged.
func (k *Matrix) moveUnit(i, p, q int, colSums []int) {
	k.data[i*k.cols+p]--
	k.data[i*k.cols+q]++
	colSums[p]--
	colSums[q]++
}

// enforceConstraints post-processes the matrix so no two rows are identical
// and no column is entirely zero, using single-unit moves that preserve
// every row sum. Both properties are best-effort: shapes where they are
// unattainable (fewer distinct degree-E rows than monomials, or total mass
// below the column count) are left as close as achievable.
func enforceConstraints(k *Matrix) {
	if k.rows == 0 || k.cols == 0 {
		return
	}
	seen := make(map[string]int, k.rows)
	for i := 0; i < k.rows; i++ {
		seen[k.rowKey(i)]++
	}
	colSums := k.ColSums()

	for i := 0; i < k.rows; i++ {
		key := k.rowKey(i)
		if seen[key] <= 1 {
			continue
		}
		if p, q, ok := k.findDedupMove(i, seen, colSums); ok {
			seen[key]--
			if seen[key] == 0 {
				delete(seen, key)
			}
			k.moveUnit(i, p, q, colSums)
			seen[k.rowKey(i)]++
		}
	}

	for j := 0; j < k.cols; j++ {
		if colSums[j] == 0 {
			k.fillColumn(j, seen, colSums)
		}
	}
}

// findDedupMove searches for a unit move making row i unique, preferring to
// add mass to a zero column, then to the least-covered column, falling back
// to an exhaustive scan over all (donor, target) pairs.
func (k *Matrix) findDedupMove(i int, seen map[string]int, colSums []int) (p, q int, ok bool) {
	target := -1
	for j := 0; j < k.cols; j++ {
		if colSums[j] == 0 {
			target = j
			break
		}
	}
	if target < 0 {
		target = 0
		for j := 1; j < k.cols; j++ {
			if colSums[j] < colSums[target] {
				target = j
			}
		}
	}
	for p = 0; p < k.cols; p++ {
		if p == target || k.At(i, p) == 0 {
			continue
		}
		if seen[k.movedKey(i, p, target)] == 0 {
			return p, target, true
		}
	}
	for p = 0; p < k.cols; p++ {
		if k.At(i, p) == 0 {
			continue
		}
		for q = 0; q < k.cols; q++ {
			if q == p {
				continue
			}
			if seen[k.movedKey(i, p, q)] == 0 {
				return p, q, true
			}
		}
	}
	return 0, 0, false
}

// fillColumn gives zero column j one unit of mass taken from another column
// of some row. A move that keeps all rows unique is preferred; if none
// exists the move is made anyway, since coverage degeneracy is worse for a
// benchmark than a repeated monomial.
func (k *Matrix) fillColumn(j int, seen map[string]int, colSums []int) {
	apply := func(i, p int) {
		key := k.rowKey(i)
		seen[key]--
		if seen[key] == 0 {
			delete(seen, key)
		}
		k.moveUnit(i, p, j, colSums)
		seen[k.rowKey(i)]++
	}

	for i := 0; i < k.rows; i++ {
		best, bestVal := -1, 0
		for p := 0; p < k.cols; p++ {
			if p == j || k.At(i, p) <= bestVal {
				continue
			}
			if seen[k.movedKey(i, p, j)] == 0 {
				best, bestVal = p, k.At(i, p)
			}
		}
		if best >= 0 {
			apply(i, best)
			return
		}
	}
	for i := 0; i < k.rows; i++ {
		for p := 0; p < k.cols; p++ {
			if p != j && k.At(i, p) > 0 {
				apply(i, p)
				return
			}
		}
	}
}

// movedKey returns the duplicate-detection key row i would have after moving
// one unit from column p to column q, without mutating the matrix.
func (k *Matrix) movedKey(i, p, q int) string {
	var b strings.Builder
	for j := 0; j < k.cols; j++ {
		if j > 0 {
			b.WriteByte(',')
		}
		v := k.data[i*k.cols+j]
		switch j {
		case p:
			v--
		case q:
			v++
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
