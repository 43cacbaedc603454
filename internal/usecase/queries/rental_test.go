//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"locadora-api/internal/infra/repository"
	"locadora-api/internal/infra/tablestore"
	"locadora-api/internal/usecase/queries"
	"locadora-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rentalQueryFixture struct {
	ctx         context.Context
	vehicleRepo *repository.VehicleRepository
	clientRepo  *repository.ClientRepository
	rentalRepo  *repository.RentalRepository
	q           queries.RentalQueries
}

func newRentalQueryFixture(t *testing.T) *rentalQueryFixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := tablestore.NewMemoryStore()

	f := &rentalQueryFixture{
		ctx:         context.Background(),
		vehicleRepo: repository.NewVehicleRepository(store, logger),
		clientRepo:  repository.NewClientRepository(store, logger),
		rentalRepo:  repository.NewRentalRepository(store, logger),
	}
	f.q = queries.NewRentalQueries(f.rentalRepo, f.vehicleRepo, f.clientRepo, logger)
	return f
}

func TestActiveRentals(t *testing.T) {
	t.Run("joins vehicle and client records", func(t *testing.T) {
		f := newRentalQueryFixture(t)

		v, err := builder.NewVehicleBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, f.vehicleRepo.Create(f.ctx, v))

		c, err := builder.NewClientBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, f.clientRepo.Create(f.ctx, c))

		r, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, f.rentalRepo.Create(f.ctx, r))

		views, err := f.q.ActiveRentals(f.ctx)
		require.NoError(t, err)
		require.Len(t, views, 1)

		view := views[0]
		assert.Equal(t, r.ID, view.ID)
		assert.Equal(t, "ativa", view.Status)
		require.NotNil(t, view.Vehicle)
		assert.Equal(t, v.Plate, view.Vehicle.Plate)
		require.NotNil(t, view.Client)
		assert.Equal(t, c.Name, view.Client.Name)
	})

	t.Run("cancelled rentals are excluded", func(t *testing.T) {
		f := newRentalQueryFixture(t)

		r, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)
		r.Cancel()
		require.NoError(t, f.rentalRepo.Create(f.ctx, r))

		views, err := f.q.ActiveRentals(f.ctx)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("dangling references degrade to nil sub-views", func(t *testing.T) {
		f := newRentalQueryFixture(t)

		r, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, f.rentalRepo.Create(f.ctx, r))

		views, err := f.q.ActiveRentals(f.ctx)
		require.NoError(t, err)
		require.Len(t, views, 1, "the rental still appears")

		assert.Nil(t, views[0].Vehicle)
		assert.Nil(t, views[0].Client)
	})

	t.Run("empty store", func(t *testing.T) {
		f := newRentalQueryFixture(t)

		views, err := f.q.ActiveRentals(f.ctx)
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}
