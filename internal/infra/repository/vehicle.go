package repository

import (
	"context"
	"errors"
	"log/slog"

	"locadora-api/internal/domain/vehicle"
	"locadora-api/internal/infra"
	"locadora-api/internal/infra/repository/converter"
	"locadora-api/internal/infra/tablestore"
)

type VehicleRepository struct {
	store  tablestore.Store
	logger *slog.Logger
}

func NewVehicleRepository(store tablestore.Store, logger *slog.Logger) *VehicleRepository {
	return &VehicleRepository{
		store:  store,
		logger: logger,
	}
}

func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	row := vehicleRow{
		Plate:     v.Plate,
		Brand:     v.Brand,
		Model:     v.Model,
		Year:      v.Year,
		DailyRate: v.DailyRate,
		ImageURL:  v.ImageURL,
		Available: v.Available,
	}

	if err := r.store.Create(ctx, vehiclePartition, v.Plate, row); err != nil {
		if errors.Is(err, tablestore.ErrItemExists) {
			return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "vehicle already registered", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to create vehicle", err)
	}
	return nil
}

func (r *VehicleRepository) FindByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	var row vehicleRow
	if err := r.store.Get(ctx, vehiclePartition, plate, &row); err != nil {
		if errors.Is(err, tablestore.ErrItemNotFound) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "vehicle not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to find vehicle", err)
	}
	return vehicleFromRow(row), nil
}

// SetAvailability merges only the availability flag, leaving the rest of the
// record untouched.
func (r *VehicleRepository) SetAvailability(ctx context.Context, plate string, available bool) error {
	attrs := map[string]any{"disponivel": available}

	if err := r.store.Merge(ctx, vehiclePartition, plate, attrs); err != nil {
		if errors.Is(err, tablestore.ErrItemNotFound) {
			return infra.WrapRepoErr(r.logger, infra.KindNotFound, "vehicle not found", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to update vehicle availability", err)
	}
	return nil
}

func (r *VehicleRepository) FindAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	return r.query(ctx, nil)
}

// FindAvailable pushes the availability condition down to the store; brand
// and model filtering stays application-side.
func (r *VehicleRepository) FindAvailable(ctx context.Context) ([]*vehicle.Vehicle, error) {
	return r.query(ctx, tablestore.Filter{"disponivel": true})
}

func (r *VehicleRepository) query(ctx context.Context, filter tablestore.Filter) ([]*vehicle.Vehicle, error) {
	var rows []vehicleRow
	if err := r.store.Query(ctx, vehiclePartition, filter, &rows); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to scan vehicles", err)
	}

	vehicles := make([]*vehicle.Vehicle, len(rows))
	for i, row := range rows {
		vehicles[i] = vehicleFromRow(row)
	}
	return vehicles, nil
}

func vehicleFromRow(row vehicleRow) *vehicle.Vehicle {
	return converter.ToVehicle(row.Plate, row.Brand, row.Model, row.Year, row.DailyRate, row.ImageURL, row.Available)
}
