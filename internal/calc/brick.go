package calc

import (
	"fmt"
	"math"

	"github.com/zedbuild/buildcalc/internal/common"
	"github.com/zedbuild/buildcalc/internal/models"
)

// Standard Zambian brick dimensions and wall constants, in meters.
const (
	brickLength   = 0.230
	brickHeight   = 0.076
	wallThickness = 0.110
	// wastageFactor adds 5% for breakage and cutting.
	wastageFactor = 1.05
)

// BrickInput describes a single-brick wall. Length and Height are meters,
// MortarThickness is the joint in millimeters. Prices are optional.
type BrickInput struct {
	Length          float64 `json:"length"`
	Height          float64 `json:"height"`
	MortarThickness float64 `json:"mortarThickness"`
	BrickPrice      float64 `json:"brickPrice,omitempty"`
	MortarPrice     float64 `json:"mortarPrice,omitempty"`
}

// BrickResult is the material breakdown for a wall.
type BrickResult struct {
	WallArea     float64
	Bricks       int // includes wastage
	MortarVolume float64
	BrickCost    float64
	MortarCost   float64
	TotalCost    float64
}

// Brick computes the brick and mortar quantities for a wall.
func Brick(in BrickInput) (*BrickResult, error) {
	if in.Length <= 0 || in.Height <= 0 || in.MortarThickness <= 0 {
		return nil, fmt.Errorf("%w: length, height and mortar thickness must be positive", common.ErrInvalidArgument)
	}

	mortar := in.MortarThickness / 1000
	wallArea := in.Length * in.Height

	areaPerBrick := (brickLength + mortar) * (brickHeight + mortar)
	bricksNeeded := math.Ceil(wallArea / areaPerBrick)
	bricksWithWastage := int(math.Ceil(bricksNeeded * wastageFactor))

	wallVolume := wallArea * wallThickness
	totalBrickVolume := bricksNeeded * brickLength * wallThickness * brickHeight
	mortarVolume := wallVolume - totalBrickVolume

	r := &BrickResult{
		WallArea:     wallArea,
		Bricks:       bricksWithWastage,
		MortarVolume: mortarVolume,
	}
	r.BrickCost = in.BrickPrice * float64(bricksWithWastage)
	r.MortarCost = in.MortarPrice * mortarVolume
	r.TotalCost = r.BrickCost + r.MortarCost
	return r, nil
}

// Lines renders the result as tagged line items.
func (r *BrickResult) Lines(currency string) []models.ResultLine {
	lines := []models.ResultLine{
		models.ValueLine("Wall Area", fmt.Sprintf("%.2f m²", r.WallArea)),
		models.ValueLine("Bricks Needed", fmt.Sprintf("%d pieces", r.Bricks)),
		models.ValueLine("Mortar Volume", fmt.Sprintf("%.3f m³", r.MortarVolume)),
	}
	if r.TotalCost > 0 {
		lines = append(lines, models.SeparatorLine())
		if r.BrickCost > 0 {
			lines = append(lines, models.ValueLine("Bricks Cost", money(currency, r.BrickCost)))
		}
		if r.MortarCost > 0 {
			lines = append(lines, models.ValueLine("Mortar Cost", money(currency, r.MortarCost)))
		}
		lines = append(lines, models.ValueLine("Total Cost", money(currency, r.TotalCost)))
	}
	return lines
}
