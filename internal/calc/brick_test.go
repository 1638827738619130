package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zedbuild/buildcalc/internal/common"
	"github.com/zedbuild/buildcalc/internal/models"
)

func TestBrick_StandardWall(t *testing.T) {
	// 5m x 2.5m wall with 10mm joints
	r, err := Brick(BrickInput{Length: 5, Height: 2.5, MortarThickness: 10})
	require.NoError(t, err)

	assert.InDelta(t, 12.5, r.WallArea, 1e-9)
	// 12.5 / (0.240 * 0.086) = 605.6 bricks -> 606, plus 5% wastage -> 637
	assert.Equal(t, 637, r.Bricks)
	assert.Greater(t, r.MortarVolume, 0.0)
	assert.Less(t, r.MortarVolume, 12.5*wallThickness, "mortar is a fraction of the wall volume")
}

func TestBrick_WithPrices_AddsCosts(t *testing.T) {
	r, err := Brick(BrickInput{Length: 5, Height: 2.5, MortarThickness: 10, BrickPrice: 1.5, MortarPrice: 800})
	require.NoError(t, err)

	assert.InDelta(t, float64(r.Bricks)*1.5, r.BrickCost, 1e-9)
	assert.InDelta(t, r.MortarVolume*800, r.MortarCost, 1e-9)
	assert.InDelta(t, r.BrickCost+r.MortarCost, r.TotalCost, 1e-9)

	lines := r.Lines("ZMW")
	var separators int
	for _, l := range lines {
		if l.Kind == models.LineKindSeparator {
			separators++
		}
	}
	assert.Equal(t, 1, separators)
}

func TestBrick_InvalidInputs(t *testing.T) {
	_, err := Brick(BrickInput{Length: 0, Height: 2.5, MortarThickness: 10})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	_, err = Brick(BrickInput{Length: 5, Height: 2.5, MortarThickness: -1})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}
