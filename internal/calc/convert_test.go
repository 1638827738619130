package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zedbuild/buildcalc/internal/common"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		conv  Conversion
		value float64
		want  float64
	}{
		{name: "bags to tonnes", conv: ConvCementBagsToTonnes, value: 20, want: 1},
		{name: "cubic meters to litres", conv: ConvCubicMetersToLitre, value: 2.5, want: 2500},
		{name: "square meters to hectares", conv: ConvSquareMetersToHa, value: 10000, want: 1},
		{name: "meters to feet", conv: ConvMetersToFeet, value: 1, want: 3.28084},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Convert(tc.conv, tc.value)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	_, err := Convert("pressure", 1)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	_, err = Convert(ConvMetersToFeet, -1)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestConversionLabels(t *testing.T) {
	from, to, err := ConversionLabels(ConvCementBagsToTonnes)
	require.NoError(t, err)
	assert.Equal(t, "Cement Bags (50kg)", from)
	assert.Equal(t, "Tonnes", to)

	_, _, err = ConversionLabels("pressure")
	assert.Error(t, err)
}
