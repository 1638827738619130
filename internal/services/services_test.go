package services

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zedbuild/buildcalc/internal/calc"
	"github.com/zedbuild/buildcalc/internal/common"
	"github.com/zedbuild/buildcalc/internal/logging"
	"github.com/zedbuild/buildcalc/internal/models"
	"github.com/zedbuild/buildcalc/internal/repositories/calculations"
	"github.com/zedbuild/buildcalc/internal/repositories/materialprices"
	"github.com/zedbuild/buildcalc/internal/repositories/projects"
	"github.com/zedbuild/buildcalc/internal/store"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestGateway(t *testing.T) *store.Gateway {
	t.Helper()
	gw := store.NewGateway(filepath.Join(t.TempDir(), "calc.db"), testLogger())
	require.NoError(t, gw.Open(context.Background()))
	t.Cleanup(func() { _ = gw.Close() })
	return gw
}

func TestCalcServiceLogsRuns(t *testing.T) {
	gw := newTestGateway(t)
	repo := calculations.NewSQLiteRepository(gw)
	svc := NewCalcService(repo, "ZMW", testLogger())
	ctx := context.Background()

	lines, err := svc.RunCement(ctx, calc.CementInput{
		Length: 5, Width: 4, Thickness: 100, Ratio: "1:2:4",
		CementPrice: 120, SandPrice: 350, AggregatePrice: 400,
	})
	require.NoError(t, err)
	require.NotEmpty(t, lines)

	_, err = svc.RunArea(ctx, calc.AreaInput{Shape: calc.ShapeRectangle, Length: 3, Width: 2})
	require.NoError(t, err)

	all, err := svc.History(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	cement, err := svc.History(ctx, models.CalcTypeCement)
	require.NoError(t, err)
	require.Len(t, cement, 1)
	assert.Equal(t, lines, cement[0].Results)
	assert.JSONEq(t, `{"length":5,"width":4,"thickness":100,"ratio":"1:2:4","cementPrice":120,"sandPrice":350,"aggregatePrice":400}`, string(cement[0].Inputs))
}

func TestCalcServiceLogsLaborRuns(t *testing.T) {
	gw := newTestGateway(t)
	repo := calculations.NewSQLiteRepository(gw)
	svc := NewCalcService(repo, "ZMW", testLogger())
	ctx := context.Background()

	lines, err := svc.RunLabor(ctx, calc.LaborInput{Workers: 5, DailyRate: 150, Days: 10})
	require.NoError(t, err)
	require.NotEmpty(t, lines)

	labor, err := svc.History(ctx, models.CalcTypeLabor)
	require.NoError(t, err)
	require.Len(t, labor, 1)
	assert.Equal(t, lines, labor[0].Results)
	assert.JSONEq(t, `{"workers":5,"dailyRate":150,"days":10}`, string(labor[0].Inputs))
}

func TestCalcServiceInvalidInputNotLogged(t *testing.T) {
	gw := newTestGateway(t)
	repo := calculations.NewSQLiteRepository(gw)
	svc := NewCalcService(repo, "ZMW", testLogger())
	ctx := context.Background()

	_, err := svc.RunBrick(ctx, calc.BrickInput{Length: -1, Height: 2})
	require.ErrorIs(t, err, common.ErrInvalidArgument)

	all, err := svc.History(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestProjectServiceLifecycle(t *testing.T) {
	gw := newTestGateway(t)
	svc := NewProjectService(projects.NewSQLiteRepository(gw))
	ctx := context.Background()

	id, err := svc.Create(ctx, "Garage slab", "single bay", models.CalcTypeCement,
		[]byte(`{"length":6}`), []models.ResultLine{models.ValueLine("Bags", "10")})
	require.NoError(t, err)
	require.NotZero(t, id)

	p, err := svc.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Garage slab", p.Name)
	assert.Equal(t, p.Timestamp, p.LastModified)

	created := p.Timestamp
	time.Sleep(5 * time.Millisecond)
	p.Description = "double bay"
	require.NoError(t, svc.Update(ctx, p))

	p, err = svc.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "double bay", p.Description)
	assert.Equal(t, created, p.Timestamp)
	assert.True(t, p.LastModified.After(created))

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.Load(ctx, id)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestProjectServiceValidation(t *testing.T) {
	gw := newTestGateway(t)
	svc := NewProjectService(projects.NewSQLiteRepository(gw))
	ctx := context.Background()

	_, err := svc.Create(ctx, "  ", "", models.CalcTypeArea, nil, nil)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	err = svc.Update(ctx, &models.Project{Name: "no id"})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestPriceServiceApplyCity(t *testing.T) {
	gw := newTestGateway(t)
	svc := NewPriceService(materialprices.NewSQLiteRepository(gw))
	ctx := context.Background()

	require.NoError(t, svc.ApplyCity(ctx, "Lusaka"))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	cement, err := svc.Get(ctx, "cement")
	require.NoError(t, err)
	assert.Equal(t, 120.0, cement.Price)
	assert.Equal(t, "bag", cement.Unit)

	// a later city replaces the baseline
	require.NoError(t, svc.ApplyCity(ctx, "Kitwe"))
	cement, err = svc.Get(ctx, "cement")
	require.NoError(t, err)
	assert.Equal(t, 125.0, cement.Price)

	err = svc.ApplyCity(ctx, "Atlantis")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestPriceServiceSet(t *testing.T) {
	gw := newTestGateway(t)
	svc := NewPriceService(materialprices.NewSQLiteRepository(gw))
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "cement", 140, "bag"))
	p, err := svc.Get(ctx, "cement")
	require.NoError(t, err)
	assert.Equal(t, 140.0, p.Price)

	err = svc.Set(ctx, "cement", -1, "bag")
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}
