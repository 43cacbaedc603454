package queries

import (
	"context"
	"log/slog"

	"locadora-api/internal/domain/rental"
	"locadora-api/internal/infra"
	"locadora-api/internal/pkg/errs"
)

type RentalReadStore interface {
	FindAll(ctx context.Context) ([]*rental.Rental, error)
}

type RentalQueries interface {
	// ActiveRentals returns each active rental joined with the current
	// vehicle and client records. Dangling references degrade to nil
	// sub-views instead of dropping the rental.
	ActiveRentals(ctx context.Context) ([]*ActiveRentalView, error)
}

type rentalQueriesImpl struct {
	rentalStore  RentalReadStore
	vehicleStore VehicleReadStore
	clientStore  ClientReadStore
	logger       *slog.Logger
}

func NewRentalQueries(
	rentalStore RentalReadStore,
	vehicleStore VehicleReadStore,
	clientStore ClientReadStore,
	logger *slog.Logger,
) RentalQueries {
	return &rentalQueriesImpl{
		rentalStore:  rentalStore,
		vehicleStore: vehicleStore,
		clientStore:  clientStore,
		logger:       logger,
	}
}

func (q *rentalQueriesImpl) ActiveRentals(ctx context.Context) ([]*ActiveRentalView, error) {
	rentals, err := q.rentalStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to scan rentals")
	}

	views := make([]*ActiveRentalView, 0, len(rentals))
	for _, rent := range rentals {
		if !rent.IsActive() {
			continue
		}

		view := &ActiveRentalView{
			ID:         rent.ID,
			StartDate:  rent.StartDate,
			EndDate:    rent.EndDate,
			TotalValue: rent.TotalValue,
			Status:     rent.Status.String(),
		}

		v, err := q.vehicleStore.FindByPlate(ctx, rent.VehiclePlate)
		switch {
		case err == nil:
			view.Vehicle = FromVehicle(v)
		case infra.IsKind(err, infra.KindNotFound):
			q.logger.Warn("active rental references unknown vehicle",
				"locacao", rent.ID, "placa", rent.VehiclePlate)
		default:
			return nil, errs.Wrap(err, "failed to look up vehicle")
		}

		c, err := q.clientStore.FindByID(ctx, rent.ClientID)
		switch {
		case err == nil:
			view.Client = FromClient(c)
		case infra.IsKind(err, infra.KindNotFound):
			q.logger.Warn("active rental references unknown client",
				"locacao", rent.ID, "cliente", rent.ClientID)
		default:
			return nil, errs.Wrap(err, "failed to look up client")
		}

		views = append(views, view)
	}
	return views, nil
}
