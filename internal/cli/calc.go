package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zedbuild/buildcalc/internal/calc"
	"github.com/zedbuild/buildcalc/internal/common"
	"github.com/zedbuild/buildcalc/internal/models"
)

// lastRun keeps the most recent calculation so the save command can turn it
// into a project.
type lastRun struct {
	typ     models.CalcType
	inputs  json.RawMessage
	results []models.ResultLine
}

func (a *App) rememberRun(ctx context.Context, typ models.CalcType, inputs any, results []models.ResultLine) {
	raw, err := json.Marshal(inputs)
	if err != nil {
		a.log.Error(ctx, "failed to encode calculation inputs", "error", err)
		return
	}
	a.last = &lastRun{typ: typ, inputs: raw, results: results}
}

// storedPrice returns the stored price of a material, or 0 when the price
// table has no entry. Cost estimates are a pro feature.
func (a *App) storedPrice(ctx context.Context, material string) float64 {
	if !a.pro.IsEntitled() {
		return 0
	}
	p, err := a.prices.Get(ctx, material)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			a.log.Warn(ctx, "failed to read price", "material", material, "error", err)
		}
		return 0
	}
	return p.Price
}

func (a *App) costHint() {
	if !a.pro.IsEntitled() {
		fmt.Fprintln(a.out, "(cost estimates are a pro feature, type 'buy' to unlock)")
	}
}

func (a *App) Cement(ctx context.Context) error {
	in := calc.CementInput{}
	var err error
	if in.Length, err = GetFloat(a.reader, "Slab length (m)", a.out); err != nil {
		return a.reportErr(err)
	}
	if in.Width, err = GetFloat(a.reader, "Slab width (m)", a.out); err != nil {
		return a.reportErr(err)
	}
	if in.Thickness, err = GetFloat(a.reader, "Slab thickness (mm)", a.out); err != nil {
		return a.reportErr(err)
	}
	if in.Ratio, err = GetSimpleText(a.reader, "Mix ratio (e.g. 1:2:4)", a.out); err != nil {
		return a.reportErr(err)
	}
	in.CementPrice = a.storedPrice(ctx, "cement")
	in.SandPrice = a.storedPrice(ctx, "sand")
	in.AggregatePrice = a.storedPrice(ctx, "aggregate")

	lines, err := a.calcs.RunCement(ctx, in)
	if err != nil {
		return a.reportErr(err)
	}
	a.rememberRun(ctx, models.CalcTypeCement, in, lines)
	a.printLines(lines)
	a.costHint()
	return nil
}

func (a *App) Brick(ctx context.Context) error {
	in := calc.BrickInput{}
	var err error
	if in.Length, err = GetFloat(a.reader, "Wall length (m)", a.out); err != nil {
		return a.reportErr(err)
	}
	if in.Height, err = GetFloat(a.reader, "Wall height (m)", a.out); err != nil {
		return a.reportErr(err)
	}
	if in.MortarThickness, err = GetOptionalFloat(a.reader, "Mortar joint thickness (mm, empty for 10)", a.out); err != nil {
		return a.reportErr(err)
	}
	if in.MortarThickness == 0 {
		in.MortarThickness = 10
	}
	in.BrickPrice = a.storedPrice(ctx, "brick")
	in.MortarPrice = a.storedPrice(ctx, "mortar")

	lines, err := a.calcs.RunBrick(ctx, in)
	if err != nil {
		return a.reportErr(err)
	}
	a.rememberRun(ctx, models.CalcTypeBrick, in, lines)
	a.printLines(lines)
	a.costHint()
	return nil
}

func (a *App) Area(ctx context.Context) error {
	in := calc.AreaInput{}
	shape, err := GetSimpleText(a.reader, "Shape (rectangle, triangle, circle)", a.out)
	if err != nil {
		return a.reportErr(err)
	}
	in.Shape = calc.Shape(shape)
	prompt := "Length (m)"
	if in.Shape == calc.ShapeCircle {
		prompt = "Radius (m)"
	}
	if in.Length, err = GetFloat(a.reader, prompt, a.out); err != nil {
		return a.reportErr(err)
	}
	if in.Shape != calc.ShapeCircle {
		if in.Width, err = GetFloat(a.reader, "Width (m)", a.out); err != nil {
			return a.reportErr(err)
		}
	}

	lines, err := a.calcs.RunArea(ctx, in)
	if err != nil {
		return a.reportErr(err)
	}
	a.rememberRun(ctx, models.CalcTypeArea, in, lines)
	a.printLines(lines)
	return nil
}

func (a *App) Volume(ctx context.Context) error {
	in := calc.VolumeInput{}
	shape, err := GetSimpleText(a.reader, "Shape (cube, cuboid, cylinder)", a.out)
	if err != nil {
		return a.reportErr(err)
	}
	in.Shape = calc.Shape(shape)
	switch in.Shape {
	case calc.ShapeCube:
		if in.Length, err = GetFloat(a.reader, "Side (m)", a.out); err != nil {
			return a.reportErr(err)
		}
	case calc.ShapeCylinder:
		if in.Length, err = GetFloat(a.reader, "Radius (m)", a.out); err != nil {
			return a.reportErr(err)
		}
		if in.Height, err = GetFloat(a.reader, "Height (m)", a.out); err != nil {
			return a.reportErr(err)
		}
	default:
		if in.Length, err = GetFloat(a.reader, "Length (m)", a.out); err != nil {
			return a.reportErr(err)
		}
		if in.Width, err = GetFloat(a.reader, "Width (m)", a.out); err != nil {
			return a.reportErr(err)
		}
		if in.Height, err = GetFloat(a.reader, "Height (m)", a.out); err != nil {
			return a.reportErr(err)
		}
	}

	lines, err := a.calcs.RunVolume(ctx, in)
	if err != nil {
		return a.reportErr(err)
	}
	a.rememberRun(ctx, models.CalcTypeVolume, in, lines)
	a.printLines(lines)
	return nil
}

func (a *App) Labor(ctx context.Context) error {
	in := calc.LaborInput{}
	workers, err := GetInt(a.reader, "Number of workers", a.out)
	if err != nil {
		return a.reportErr(err)
	}
	in.Workers = int(workers)
	if in.DailyRate, err = GetFloat(a.reader, "Daily rate per worker", a.out); err != nil {
		return a.reportErr(err)
	}
	days, err := GetInt(a.reader, "Duration (days)", a.out)
	if err != nil {
		return a.reportErr(err)
	}
	in.Days = int(days)

	lines, err := a.calcs.RunLabor(ctx, in)
	if err != nil {
		return a.reportErr(err)
	}
	a.rememberRun(ctx, models.CalcTypeLabor, in, lines)
	a.printLines(lines)
	return nil
}

func (a *App) Convert(ctx context.Context) error {
	kind, err := GetSimpleText(a.reader, "Conversion (cement, volume, area, length)", a.out)
	if err != nil {
		return a.reportErr(err)
	}
	value, err := GetFloat(a.reader, "Value", a.out)
	if err != nil {
		return a.reportErr(err)
	}
	converted, err := calc.Convert(calc.Conversion(kind), value)
	if err != nil {
		return a.reportErr(err)
	}
	from, to, err := calc.ConversionLabels(calc.Conversion(kind))
	if err != nil {
		return a.reportErr(err)
	}
	fmt.Fprintf(a.out, "%g %s = %g %s\n", value, from, converted, to)
	return nil
}

func (a *App) History(ctx context.Context) error {
	typ, err := GetSimpleText(a.reader, "Type filter (cement, brick, area, volume, labor; empty for all)", a.out)
	if err != nil {
		return a.reportErr(err)
	}
	records, err := a.calcs.History(ctx, models.CalcType(typ))
	if err != nil {
		return a.reportErr(err)
	}
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No calculations yet.")
		return nil
	}
	for _, r := range records {
		fmt.Fprintf(a.out, "#%d  %s  %s\n", r.ID, r.Timestamp.Format("2006-01-02 15:04"), r.Type)
	}
	return nil
}
