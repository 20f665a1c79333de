package polygen

const (
	// Nominal tunable ranges. Calibrated empirically against compiled-cost
	// measurements; only the sum invariants are contractual.
	DefaultAlphaMin = 0.6
	DefaultAlphaMax = 1.5
	DefaultBetaMin  = 0.2
	DefaultBetaMax  = 0.8

	// DefaultConcentration is the symmetric Dirichlet concentration used to
	// spread a degree budget across variables. Values near 0 give
	// winner-take-most rows; large values give near-uniform rows.
	DefaultConcentration = 2.0
)

// GenOpts bundles the tunable parameters of the generation pipeline.
type GenOpts struct {
	Seed          *int64       // nil means a fresh crypto-seeded stream
	Coeffs        *CoeffBounds // nil means DefaultCoeffBounds; an explicit range is validated as given
	Concentration float64      // Dirichlet concentration for exponent rows
	AlphaMin      float64      // monomial density factor range
	AlphaMax      float64
	BetaMin       float64 // width/depth factor range
	BetaMax       float64
}

// ApplyDefaults fills unset fields with the nominal values.
func (o *GenOpts) ApplyDefaults() {
	if o.Coeffs == nil {
		b := DefaultCoeffBounds
		o.Coeffs = &b
	}
	if o.Concentration <= 0 {
		o.Concentration = DefaultConcentration
	}
	if o.AlphaMin <= 0 {
		o.AlphaMin = DefaultAlphaMin
	}
	if o.AlphaMax <= 0 {
		o.AlphaMax = DefaultAlphaMax
	}
	if o.BetaMin <= 0 {
		o.BetaMin = DefaultBetaMin
	}
	if o.BetaMax <= 0 {
		o.BetaMax = DefaultBetaMax
	}
}

// GenOption mutates GenOpts before defaults are applied.
type GenOption func(*GenOpts)

// WithSeed pins the random stream so repeated calls with the same difficulty
// produce identical instances.
func WithSeed(seed int64) GenOption {
	return func(o *GenOpts) { o.Seed = &seed }
}

// WithCoeffBounds sets the coefficient sampling range. The range is taken
// literally, so an infeasible one (even the zero range) fails validation
// instead of falling back to the defaults.
func WithCoeffBounds(b CoeffBounds) GenOption {
	return func(o *GenOpts) { o.Coeffs = &b }
}

// WithConcentration overrides the Dirichlet concentration.
func WithConcentration(c float64) GenOption {
	return func(o *GenOpts) { o.Concentration = c }
}

// WithAlphaRange overrides the density factor range.
func WithAlphaRange(lo, hi float64) GenOption {
	return func(o *GenOpts) { o.AlphaMin, o.AlphaMax = lo, hi }
}

// WithBetaRange overrides the width/depth factor range.
func WithBetaRange(lo, hi float64) GenOption {
	return func(o *GenOpts) { o.BetaMin, o.BetaMax = lo, hi }
}

func gatherOpts(opts []GenOption) GenOpts {
	var o GenOpts
	for _, fn := range opts {
		fn(&o)
	}
	o.ApplyDefaults()
	return o
}
