package calc

import (
	"fmt"
	"math"

	"github.com/zedbuild/buildcalc/internal/common"
	"github.com/zedbuild/buildcalc/internal/models"
)

// Shape selects the geometry for area and volume calculations.
type Shape string

const (
	ShapeRectangle Shape = "rectangle"
	ShapeTriangle  Shape = "triangle"
	ShapeCircle    Shape = "circle"
	ShapeCube      Shape = "cube"
	ShapeCuboid    Shape = "cuboid"
	ShapeCylinder  Shape = "cylinder"
)

// AreaInput describes a plot. For circles, Length is the radius and Width
// is ignored. All dimensions are meters.
type AreaInput struct {
	Shape  Shape   `json:"shape"`
	Length float64 `json:"length"`
	Width  float64 `json:"width,omitempty"`
}

// AreaResult is a computed surface area.
type AreaResult struct {
	Area float64
}

// Area computes the surface area for the given shape.
func Area(in AreaInput) (*AreaResult, error) {
	if in.Length <= 0 {
		return nil, fmt.Errorf("%w: length must be positive", common.ErrInvalidArgument)
	}

	var area float64
	switch in.Shape {
	case ShapeRectangle:
		if in.Width <= 0 {
			return nil, fmt.Errorf("%w: width must be positive", common.ErrInvalidArgument)
		}
		area = in.Length * in.Width
	case ShapeTriangle:
		if in.Width <= 0 {
			return nil, fmt.Errorf("%w: width must be positive", common.ErrInvalidArgument)
		}
		area = in.Length * in.Width / 2
	case ShapeCircle:
		area = math.Pi * in.Length * in.Length
	default:
		return nil, fmt.Errorf("%w: unknown area shape %q", common.ErrInvalidArgument, in.Shape)
	}
	return &AreaResult{Area: area}, nil
}

// Lines renders the area in m² and hectares.
func (r *AreaResult) Lines() []models.ResultLine {
	return []models.ResultLine{
		models.ValueLine("Area", fmt.Sprintf("%.2f m²", r.Area)),
		models.ValueLine("Area in Hectares", fmt.Sprintf("%.4f ha", r.Area/10000)),
	}
}

// VolumeInput describes a solid. For cylinders, Length is the radius and
// Width is ignored; for cubes only Length is used. All dimensions are
// meters.
type VolumeInput struct {
	Shape  Shape   `json:"shape"`
	Length float64 `json:"length"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// VolumeResult is a computed volume.
type VolumeResult struct {
	Volume float64
}

// Volume computes the volume for the given shape.
func Volume(in VolumeInput) (*VolumeResult, error) {
	if in.Length <= 0 {
		return nil, fmt.Errorf("%w: length must be positive", common.ErrInvalidArgument)
	}

	var volume float64
	switch in.Shape {
	case ShapeCube:
		volume = in.Length * in.Length * in.Length
	case ShapeCuboid:
		if in.Width <= 0 || in.Height <= 0 {
			return nil, fmt.Errorf("%w: width and height must be positive", common.ErrInvalidArgument)
		}
		volume = in.Length * in.Width * in.Height
	case ShapeCylinder:
		if in.Height <= 0 {
			return nil, fmt.Errorf("%w: height must be positive", common.ErrInvalidArgument)
		}
		volume = math.Pi * in.Length * in.Length * in.Height
	default:
		return nil, fmt.Errorf("%w: unknown volume shape %q", common.ErrInvalidArgument, in.Shape)
	}
	return &VolumeResult{Volume: volume}, nil
}

// Lines renders the volume in m³ and litres.
func (r *VolumeResult) Lines() []models.ResultLine {
	return []models.ResultLine{
		models.ValueLine("Volume", fmt.Sprintf("%.3f m³", r.Volume)),
		models.ValueLine("Volume in Litres", fmt.Sprintf("%.2f L", r.Volume*1000)),
	}
}
