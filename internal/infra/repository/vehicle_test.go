//go:build unit

package repository_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"locadora-api/internal/infra"
	"locadora-api/internal/infra/repository"
	"locadora-api/internal/infra/tablestore"
	"locadora-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestVehicleRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewVehicleRepository(tablestore.NewMemoryStore(), testLogger())

	v, err := builder.NewVehicleBuilder().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, v))

	t.Run("plate is the row key", func(t *testing.T) {
		got, err := repo.FindByPlate(ctx, v.Plate)
		require.NoError(t, err)
		assert.Equal(t, v.Brand, got.Brand)
		assert.Equal(t, v.Model, got.Model)
		assert.True(t, got.Available)
	})

	t.Run("duplicate plate", func(t *testing.T) {
		err := repo.Create(ctx, v)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("unknown plate", func(t *testing.T) {
		_, err := repo.FindByPlate(ctx, "ZZZ0000")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("availability flip keeps other attributes", func(t *testing.T) {
		require.NoError(t, repo.SetAvailability(ctx, v.Plate, false))

		got, err := repo.FindByPlate(ctx, v.Plate)
		require.NoError(t, err)
		assert.False(t, got.Available)
		assert.Equal(t, v.Brand, got.Brand)

		require.NoError(t, repo.SetAvailability(ctx, v.Plate, true))
	})

	t.Run("availability flip on unknown plate", func(t *testing.T) {
		err := repo.SetAvailability(ctx, "ZZZ0000", false)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("find available excludes rented vehicles", func(t *testing.T) {
		rented, err := builder.NewVehicleBuilder().WithPlate("DEF5678").BuildDomain()
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, rented))
		require.NoError(t, repo.SetAvailability(ctx, rented.Plate, false))

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		available, err := repo.FindAvailable(ctx)
		require.NoError(t, err)
		require.Len(t, available, 1)
		assert.Equal(t, v.Plate, available[0].Plate)
	})
}
