//go:build unit

package repository_test

import (
	"context"
	"testing"

	"locadora-api/internal/domain/rental"
	"locadora-api/internal/infra"
	"locadora-api/internal/infra/repository"
	"locadora-api/internal/infra/tablestore"
	"locadora-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentalRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewRentalRepository(tablestore.NewMemoryStore(), testLogger())

	r, err := builder.NewRentalBuilder().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, r))

	t.Run("roundtrip keeps snapshot and status", func(t *testing.T) {
		got, err := repo.FindByID(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, r.VehiclePlate, got.VehiclePlate)
		assert.Equal(t, r.ClientID, got.ClientID)
		assert.Equal(t, r.Brand, got.Brand)
		assert.Equal(t, r.Model, got.Model)
		assert.Equal(t, rental.StatusActive, got.Status)
		assert.Equal(t, r.TotalValue, got.TotalValue)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "00000000000000000000")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("status merge", func(t *testing.T) {
		require.NoError(t, repo.SetStatus(ctx, r.ID, rental.StatusCancelled))

		got, err := repo.FindByID(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, rental.StatusCancelled, got.Status)
		assert.Equal(t, r.VehiclePlate, got.VehiclePlate, "status merge leaves the rest intact")
	})

	t.Run("status merge on unknown id", func(t *testing.T) {
		err := repo.SetStatus(ctx, "00000000000000000000", rental.StatusCancelled)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("find all", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}
