package calc

import (
	"fmt"

	"github.com/zedbuild/buildcalc/internal/common"
)

// Conversion names a supported unit conversion.
type Conversion string

const (
	ConvCementBagsToTonnes Conversion = "cement"
	ConvCubicMetersToLitre Conversion = "volume"
	ConvSquareMetersToHa   Conversion = "area"
	ConvMetersToFeet       Conversion = "length"
)

type conversionSpec struct {
	factor    float64
	fromLabel string
	toLabel   string
}

var conversions = map[Conversion]conversionSpec{
	ConvCementBagsToTonnes: {factor: 0.05, fromLabel: "Cement Bags (50kg)", toLabel: "Tonnes"},
	ConvCubicMetersToLitre: {factor: 1000, fromLabel: "Cubic Meters (m³)", toLabel: "Litres (L)"},
	ConvSquareMetersToHa:   {factor: 0.0001, fromLabel: "Square Meters (m²)", toLabel: "Hectares (ha)"},
	ConvMetersToFeet:       {factor: 3.28084, fromLabel: "Meters (m)", toLabel: "Feet (ft)"},
}

// Convert applies the named conversion to a non-negative value.
func Convert(c Conversion, value float64) (float64, error) {
	spec, ok := conversions[c]
	if !ok {
		return 0, fmt.Errorf("%w: unknown conversion %q", common.ErrInvalidArgument, c)
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: value must not be negative", common.ErrInvalidArgument)
	}
	return value * spec.factor, nil
}

// ConversionLabels returns the from/to unit labels for a conversion.
func ConversionLabels(c Conversion) (from, to string, err error) {
	spec, ok := conversions[c]
	if !ok {
		return "", "", fmt.Errorf("%w: unknown conversion %q", common.ErrInvalidArgument, c)
	}
	return spec.fromLabel, spec.toLabel, nil
}
