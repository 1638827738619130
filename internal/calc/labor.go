package calc

import (
	"fmt"

	"github.com/zedbuild/buildcalc/internal/common"
	"github.com/zedbuild/buildcalc/internal/models"
)

// LaborInput describes a labor crew hire: crew size, the daily rate per
// worker, and the duration in days.
type LaborInput struct {
	Workers   int     `json:"workers"`
	DailyRate float64 `json:"dailyRate"`
	Days      int     `json:"days"`
}

// LaborResult is the cost breakdown for a crew hire. WeeklyDays is the days
// covered by the weekly figure, capped at 7.
type LaborResult struct {
	DailyCost  float64
	WeeklyCost float64
	WeeklyDays int
	TotalCost  float64
}

// Labor computes crew costs: daily, first-week and total.
func Labor(in LaborInput) (*LaborResult, error) {
	if in.Workers < 1 || in.DailyRate <= 0 || in.Days < 1 {
		return nil, fmt.Errorf("%w: workers, daily rate and days must be positive", common.ErrInvalidArgument)
	}

	dailyCost := float64(in.Workers) * in.DailyRate
	weeklyDays := in.Days
	if weeklyDays > 7 {
		weeklyDays = 7
	}

	return &LaborResult{
		DailyCost:  dailyCost,
		WeeklyCost: dailyCost * float64(weeklyDays),
		WeeklyDays: weeklyDays,
		TotalCost:  dailyCost * float64(in.Days),
	}, nil
}

// Lines renders the result as tagged line items. Unlike the material
// calculators, costs are the whole point here, so they always appear.
func (r *LaborResult) Lines(in LaborInput, currency string) []models.ResultLine {
	return []models.ResultLine{
		models.ValueLine("Workers", fmt.Sprintf("%d people", in.Workers)),
		models.ValueLine("Daily Rate", fmt.Sprintf("%s per worker", money(currency, in.DailyRate))),
		models.ValueLine("Duration", fmt.Sprintf("%d days", in.Days)),
		models.SeparatorLine(),
		models.ValueLine("Daily Labor Cost", money(currency, r.DailyCost)),
		models.ValueLine("Weekly Cost", fmt.Sprintf("%s (%d days)", money(currency, r.WeeklyCost), r.WeeklyDays)),
		models.ValueLine("Total Cost", money(currency, r.TotalCost)),
	}
}
