package calculations

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zedbuild/buildcalc/internal/logging"
	"github.com/zedbuild/buildcalc/internal/models"
	"github.com/zedbuild/buildcalc/internal/store"
)

func setupGateway(t *testing.T) *store.Gateway {
	t.Helper()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	g := store.NewGateway(filepath.Join(t.TempDir(), "calc.db"), log)
	require.NoError(t, g.Open(context.Background()))
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func newCalc(t models.CalcType, label string) *models.Calculation {
	return &models.Calculation{
		Type:      t,
		Timestamp: time.Now(),
		Inputs:    json.RawMessage(`{"length":5,"width":4}`),
		Results:   []models.ResultLine{models.ValueLine(label, "1")},
	}
}

func TestAppend_AssignsMonotonicKeys(t *testing.T) {
	r := NewSQLiteRepository(setupGateway(t))
	ctx := context.Background()

	id1, err := r.Append(ctx, newCalc(models.CalcTypeCement, "Volume"))
	require.NoError(t, err)
	id2, err := r.Append(ctx, newCalc(models.CalcTypeCement, "Volume"))
	require.NoError(t, err)

	assert.Greater(t, id2, id1, "auto-increment keys grow")
}

func TestAppend_ThenGetAll_RoundTrips(t *testing.T) {
	r := NewSQLiteRepository(setupGateway(t))
	ctx := context.Background()

	c := newCalc(models.CalcTypeBrick, "Bricks Needed")
	id, err := r.Append(ctx, c)
	require.NoError(t, err)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, id, all[0].ID)
	assert.Equal(t, models.CalcTypeBrick, all[0].Type)
	assert.JSONEq(t, string(c.Inputs), string(all[0].Inputs))
	assert.Equal(t, c.Results, all[0].Results)
}

func TestListByType_FiltersBySecondaryIndex(t *testing.T) {
	r := NewSQLiteRepository(setupGateway(t))
	ctx := context.Background()

	_, err := r.Append(ctx, newCalc(models.CalcTypeCement, "Volume"))
	require.NoError(t, err)
	_, err = r.Append(ctx, newCalc(models.CalcTypeBrick, "Bricks Needed"))
	require.NoError(t, err)
	_, err = r.Append(ctx, newCalc(models.CalcTypeCement, "Volume"))
	require.NoError(t, err)

	cement, err := r.ListByType(ctx, models.CalcTypeCement)
	require.NoError(t, err)
	require.Len(t, cement, 2)
	for _, c := range cement {
		assert.Equal(t, models.CalcTypeCement, c.Type)
	}

	area, err := r.ListByType(ctx, models.CalcTypeArea)
	require.NoError(t, err)
	assert.Empty(t, area)
}
