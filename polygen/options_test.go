package polygen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyDefaultsFillsUnsetFields(t *testing.T) {
	o := gatherOpts(nil)
	require.Equal(t, DefaultCoeffBounds, *o.Coeffs)
	require.Equal(t, DefaultConcentration, o.Concentration)
	require.Equal(t, DefaultAlphaMin, o.AlphaMin)
	require.Equal(t, DefaultAlphaMax, o.AlphaMax)
	require.Equal(t, DefaultBetaMin, o.BetaMin)
	require.Equal(t, DefaultBetaMax, o.BetaMax)
}

func TestApplyDefaultsKeepsExplicitCoeffBounds(t *testing.T) {
	// An explicitly supplied range must reach validation as given, even
	// when it equals the struct zero value; only a missing range falls
	// back to the defaults.
	o := gatherOpts([]GenOption{WithCoeffBounds(CoeffBounds{Min: 0, Max: 0})})
	require.NotNil(t, o.Coeffs)
	require.Equal(t, CoeffBounds{Min: 0, Max: 0}, *o.Coeffs)

	inst, err := Generate(10, WithCoeffBounds(CoeffBounds{Min: 0, Max: 0}))
	require.Nil(t, inst)
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
}
