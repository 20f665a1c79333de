// Package render turns an exponent matrix and coefficient vector into a
// human-readable algebraic formula. It is pure formatting with no invariants
// of its own; the generator never depends on it.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"polybench/polygen"
)

// Renderer formats a (K, c) pair as a string.
type Renderer interface {
	Render(k *polygen.Matrix, coeffs []float64) string
}

// Text renders the polynomial as a plain sum of monomials, e.g.
// "3*x1^2*x3 - 2*x2 + 7". Variables are 1-indexed; exponent 0 omits the
// variable and exponent 1 drops the caret.
type Text struct {
	// VarPrefix is the variable name stem, "x" when empty.
	VarPrefix string
}

// Render formats the polynomial. Coefficients of magnitude 1 are dropped in
// front of a nonempty variable part; signs fold into the separators.
func (t Text) Render(k *polygen.Matrix, coeffs []float64) string {
	prefix := t.VarPrefix
	if prefix == "" {
		prefix = "x"
	}

	var b strings.Builder
	for i := 0; i < k.Rows(); i++ {
		c := coeffs[i]
		switch {
		case i == 0 && c < 0:
			b.WriteByte('-')
		case i > 0 && c < 0:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}

		vars := monomialVars(k, i, prefix)
		mag := math.Abs(c)
		if vars == "" {
			b.WriteString(formatCoeff(mag))
		} else if mag == 1 {
			b.WriteString(vars)
		} else {
			b.WriteString(formatCoeff(mag))
			b.WriteByte('*')
			b.WriteString(vars)
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// Polynomial is a convenience wrapper rendering a full instance with the
// default text renderer.
func Polynomial(inst *polygen.Instance) string {
	return Text{}.Render(inst.K, inst.Coeffs)
}

func monomialVars(k *polygen.Matrix, row int, prefix string) string {
	var b strings.Builder
	for j := 0; j < k.Cols(); j++ {
		e := k.At(row, j)
		if e == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('*')
		}
		fmt.Fprintf(&b, "%s%d", prefix, j+1)
		if e > 1 {
			fmt.Fprintf(&b, "^%d", e)
		}
	}
	return b.String()
}

func formatCoeff(mag float64) string {
	if mag == math.Trunc(mag) && math.Abs(mag) < 1e15 {
		return strconv.FormatInt(int64(mag), 10)
	}
	return strconv.FormatFloat(mag, 'g', 6, 64)
}
