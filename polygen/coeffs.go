package polygen

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// CoeffBounds defines the inclusive range [Min, Max] coefficients are drawn
// from. The default draws integers; Real switches to uniform real draws.
// Zero is never emitted regardless of the range.
type CoeffBounds struct {
	Min  float64
	Max  float64
	Real bool
}

// DefaultCoeffBounds is the small integer range used when the caller does
// not supply one.
var DefaultCoeffBounds = CoeffBounds{Min: -10, Max: 10}

// validate rejects ranges containing no eligible nonzero value before any
// sampling takes place.
func (b CoeffBounds) validate() error {
	if !(b.Min < b.Max) {
		return &InputError{Reason: fmt.Sprintf("coefficient range [%v, %v] is empty", b.Min, b.Max)}
	}
	if !b.Real {
		lo, hi := math.Ceil(b.Min), math.Floor(b.Max)
		if lo > hi || (lo == 0 && hi == 0) {
			return &InputError{Reason: fmt.Sprintf("coefficient range [%v, %v] contains no nonzero integer", b.Min, b.Max)}
		}
	}
	return nil
}

// sampleCoeffs draws count coefficients from b, rejecting and resampling any
// draw that lands on exactly zero. b must have been validated.
func sampleCoeffs(count int, b CoeffBounds, rng *rand.Rand) []float64 {
	out := make([]float64, count)
	for i := range out {
		out[i] = b.drawNonzero(rng)
	}
	return out
}

func (b CoeffBounds) drawNonzero(rng *rand.Rand) float64 {
	if b.Real {
		for {
			c := b.Min + rng.Float64()*(b.Max-b.Min)
			if c != 0 {
				return c
			}
		}
	}
	lo := int64(math.Ceil(b.Min))
	span := int64(math.Floor(b.Max)) - lo + 1
	for {
		c := lo + rng.Int63n(span)
		if c != 0 {
			return float64(c)
		}
	}
}
