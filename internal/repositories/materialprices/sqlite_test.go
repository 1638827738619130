package materialprices

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zedbuild/buildcalc/internal/common"
	"github.com/zedbuild/buildcalc/internal/logging"
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

func TestSave_ThenFind_RoundTrips(t *testing.T) {
	r := NewSQLiteRepository(setupGateway(t))
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	require.NoError(t, r.Save(ctx, "cement", 120, "ZMW"))

	got, err := r.Find(ctx, "cement")
	require.NoError(t, err)
	assert.Equal(t, "cement", got.Material)
	assert.Equal(t, 120.0, got.Price)
	assert.Equal(t, "ZMW", got.Unit)
	assert.True(t, got.LastUpdated.After(before), "lastUpdated must be recent")
}

func TestSave_NegativePrice_RejectedBeforeWrite(t *testing.T) {
	r := NewSQLiteRepository(setupGateway(t))
	ctx := context.Background()

	err := r.Save(ctx, "cement", -5, "ZMW")
	require.ErrorIs(t, err, common.ErrInvalidArgument)

	_, err = r.Find(ctx, "cement")
	assert.ErrorIs(t, err, common.ErrNotFound, "nothing may be persisted on validation failure")
}

func TestSave_ZeroPrice_Allowed(t *testing.T) {
	r := NewSQLiteRepository(setupGateway(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "sand", 0, "ZMW"))

	got, err := r.Find(ctx, "sand")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Price)
}

func TestSave_SameMaterial_LastWriterWins(t *testing.T) {
	r := NewSQLiteRepository(setupGateway(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "cement", 120, "ZMW"))
	require.NoError(t, r.Save(ctx, "cement", 135, "ZMW"))

	all, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "one record per material")
	assert.Equal(t, 135.0, all[0].Price)
}

func TestFindAll_Empty(t *testing.T) {
	r := NewSQLiteRepository(setupGateway(t))

	all, err := r.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
