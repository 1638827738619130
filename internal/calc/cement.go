// Package calc implements the construction calculators: pure functions of
// numeric inputs to typed results. No I/O happens here; persistence of
// results is the services layer's job.
package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/zedbuild/buildcalc/internal/common"
	"github.com/zedbuild/buildcalc/internal/models"
)

const (
	// dryVolumeFactor converts wet concrete volume to dry material volume,
	// accounting for voids and wastage.
	dryVolumeFactor = 1.54
	// bagVolume is the volume of one 50 kg cement bag in m³.
	bagVolume = 0.035
)

// CementInput describes a concrete slab pour. Length and Width are meters,
// Thickness is millimeters. Ratio is a cement:sand:aggregate mix like
// "1:2:4". Prices are optional; zero omits the cost breakdown.
type CementInput struct {
	Length         float64 `json:"length"`
	Width          float64 `json:"width"`
	Thickness      float64 `json:"thickness"`
	Ratio          string  `json:"ratio"`
	CementPrice    float64 `json:"cementPrice,omitempty"`
	SandPrice      float64 `json:"sandPrice,omitempty"`
	AggregatePrice float64 `json:"aggregatePrice,omitempty"`
}

// CementResult is the material breakdown for a pour.
type CementResult struct {
	WetVolume       float64
	CementBags      int
	SandVolume      float64
	AggregateVolume float64
	CementCost      float64
	SandCost        float64
	AggregateCost   float64
	TotalCost       float64
}

// Cement computes the material quantities for a slab pour.
func Cement(in CementInput) (*CementResult, error) {
	if in.Length <= 0 || in.Width <= 0 || in.Thickness <= 0 {
		return nil, fmt.Errorf("%w: length, width and thickness must be positive", common.ErrInvalidArgument)
	}
	cementPart, sandPart, aggregatePart, err := parseRatio(in.Ratio)
	if err != nil {
		return nil, err
	}

	wetVolume := in.Length * in.Width * (in.Thickness / 1000)
	dryVolume := wetVolume * dryVolumeFactor

	totalParts := cementPart + sandPart + aggregatePart
	cementVolume := dryVolume * cementPart / totalParts
	sandVolume := dryVolume * sandPart / totalParts
	aggregateVolume := dryVolume * aggregatePart / totalParts

	r := &CementResult{
		WetVolume:       wetVolume,
		CementBags:      int(math.Ceil(cementVolume / bagVolume)),
		SandVolume:      sandVolume,
		AggregateVolume: aggregateVolume,
	}
	r.CementCost = in.CementPrice * float64(r.CementBags)
	r.SandCost = in.SandPrice * sandVolume
	r.AggregateCost = in.AggregatePrice * aggregateVolume
	r.TotalCost = r.CementCost + r.SandCost + r.AggregateCost
	return r, nil
}

// Lines renders the result as tagged line items. Cost lines follow a
// separator and appear only when prices were supplied.
func (r *CementResult) Lines(currency string) []models.ResultLine {
	lines := []models.ResultLine{
		models.ValueLine("Volume", fmt.Sprintf("%.3f m³", r.WetVolume)),
		models.ValueLine("Cement Bags", fmt.Sprintf("%d bags (50kg)", r.CementBags)),
		models.ValueLine("Sand", fmt.Sprintf("%.3f m³", r.SandVolume)),
		models.ValueLine("Aggregate", fmt.Sprintf("%.3f m³", r.AggregateVolume)),
	}
	if r.TotalCost > 0 {
		lines = append(lines, models.SeparatorLine())
		if r.CementCost > 0 {
			lines = append(lines, models.ValueLine("Cement Cost", money(currency, r.CementCost)))
		}
		if r.SandCost > 0 {
			lines = append(lines, models.ValueLine("Sand Cost", money(currency, r.SandCost)))
		}
		if r.AggregateCost > 0 {
			lines = append(lines, models.ValueLine("Aggregate Cost", money(currency, r.AggregateCost)))
		}
		lines = append(lines, models.ValueLine("Total Cost", money(currency, r.TotalCost)))
	}
	return lines
}

func money(currency string, amount float64) string {
	return fmt.Sprintf("%s %.2f", currency, amount)
}

// parseRatio splits a "1:2:4" mix into its three positive parts.
func parseRatio(ratio string) (cement, sand, aggregate float64, err error) {
	parts := strings.Split(ratio, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: mix ratio must look like 1:2:4, got %q", common.ErrInvalidArgument, ratio)
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || v <= 0 {
			return 0, 0, 0, fmt.Errorf("%w: mix ratio must look like 1:2:4, got %q", common.ErrInvalidArgument, ratio)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], nil
}
