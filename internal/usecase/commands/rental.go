package commands

import (
	"context"
	"log/slog"

	"locadora-api/internal/domain/rental"
	reqdto "locadora-api/internal/handler/dto/request"
	"locadora-api/internal/infra"
	"locadora-api/internal/pkg/errs"
	"locadora-api/internal/pkg/rowid"
)

var (
	ErrRentalValidation = errs.New("rental validation failed")
	ErrRentalNotFound   = errs.New("rental not found")
)

type RentalCommands interface {
	Create(ctx context.Context, req reqdto.CreateRentalRequest) (string, error)
	Cancel(ctx context.Context, rentalID string) error
}

type rentalCommandsImpl struct {
	rentalRepo  RentalRepository
	vehicleRepo VehicleRepository
	idGen       *rowid.Generator
	logger      *slog.Logger
}

func NewRentalCommands(
	rentalRepo RentalRepository,
	vehicleRepo VehicleRepository,
	idGen *rowid.Generator,
	logger *slog.Logger,
) RentalCommands {
	return &rentalCommandsImpl{
		rentalRepo:  rentalRepo,
		vehicleRepo: vehicleRepo,
		idGen:       idGen,
		logger:      logger,
	}
}

// Create persists the rental before flipping the vehicle's availability.
// A missing vehicle does not fail the operation: the rental is stored with
// placeholder brand/model and no flag is flipped. A failure on the flip
// leaves the rental in place (no compensation) and surfaces to the caller.
func (c *rentalCommandsImpl) Create(ctx context.Context, req reqdto.CreateRentalRequest) (string, error) {
	// Validate before any store access; an empty plate must never reach
	// the table service as a row key.
	rent, err := rental.New(
		c.idGen.Next(),
		req.VehiclePlate,
		req.ClientID,
		req.StartDate,
		req.EndDate,
		req.TotalValue,
		"",
		"",
	)
	if err != nil {
		return "", errs.Mark(err, ErrRentalValidation)
	}

	vehicleFound := false
	v, err := c.vehicleRepo.FindByPlate(ctx, rent.VehiclePlate)
	switch {
	case err == nil:
		rent.Brand, rent.Model = v.Brand, v.Model
		vehicleFound = true
	case infra.IsKind(err, infra.KindNotFound):
		c.logger.Warn("rental references unknown vehicle, storing placeholder snapshot",
			"placa", rent.VehiclePlate)
	default:
		return "", errs.Wrap(err, "failed to look up vehicle")
	}

	if err := c.rentalRepo.Create(ctx, rent); err != nil {
		return "", errs.Wrap(err, "failed to create rental")
	}

	if vehicleFound {
		if err := c.vehicleRepo.SetAvailability(ctx, rent.VehiclePlate, false); err != nil {
			return "", errs.Wrap(err, "rental created but vehicle availability update failed")
		}
	}

	return rent.ID, nil
}

// Cancel flips the rental status and then best-effort releases the vehicle.
// Cancelling an already-cancelled rental is accepted and re-applies both
// writes.
func (c *rentalCommandsImpl) Cancel(ctx context.Context, rentalID string) error {
	rent, err := c.rentalRepo.FindByID(ctx, rentalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRentalNotFound
		}
		return errs.Wrap(err, "failed to look up rental")
	}

	rent.Cancel()
	if err := c.rentalRepo.SetStatus(ctx, rent.ID, rent.Status); err != nil {
		return errs.Wrap(err, "failed to cancel rental")
	}

	if err := c.vehicleRepo.SetAvailability(ctx, rent.VehiclePlate, true); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.logger.Warn("cancelled rental references unknown vehicle",
				"locacao", rent.ID, "placa", rent.VehiclePlate)
			return nil
		}
		return errs.Wrap(err, "failed to release vehicle")
	}

	return nil
}
