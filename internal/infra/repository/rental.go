package repository

import (
	"context"
	"errors"
	"log/slog"

	"locadora-api/internal/domain/rental"
	"locadora-api/internal/infra"
	"locadora-api/internal/infra/repository/converter"
	"locadora-api/internal/infra/tablestore"
)

type RentalRepository struct {
	store  tablestore.Store
	logger *slog.Logger
}

func NewRentalRepository(store tablestore.Store, logger *slog.Logger) *RentalRepository {
	return &RentalRepository{
		store:  store,
		logger: logger,
	}
}

func (r *RentalRepository) Create(ctx context.Context, rent *rental.Rental) error {
	row := rentalRow{
		ID:           rent.ID,
		VehiclePlate: rent.VehiclePlate,
		ClientID:     rent.ClientID,
		StartDate:    rent.StartDate,
		EndDate:      rent.EndDate,
		TotalValue:   rent.TotalValue,
		Status:       rent.Status.String(),
		Brand:        rent.Brand,
		Model:        rent.Model,
	}

	if err := r.store.Create(ctx, rentalPartition, rent.ID, row); err != nil {
		if errors.Is(err, tablestore.ErrItemExists) {
			return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "rental id already taken", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to create rental", err)
	}
	return nil
}

func (r *RentalRepository) FindByID(ctx context.Context, id string) (*rental.Rental, error) {
	var row rentalRow
	if err := r.store.Get(ctx, rentalPartition, id, &row); err != nil {
		if errors.Is(err, tablestore.ErrItemNotFound) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "rental not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to find rental", err)
	}
	return rentalFromRow(row), nil
}

// SetStatus merges only the status attribute. Rentals are never deleted;
// cancellation is the only mutation.
func (r *RentalRepository) SetStatus(ctx context.Context, id string, status rental.Status) error {
	attrs := map[string]any{"status": status.String()}

	if err := r.store.Merge(ctx, rentalPartition, id, attrs); err != nil {
		if errors.Is(err, tablestore.ErrItemNotFound) {
			return infra.WrapRepoErr(r.logger, infra.KindNotFound, "rental not found", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to update rental status", err)
	}
	return nil
}

func (r *RentalRepository) FindAll(ctx context.Context) ([]*rental.Rental, error) {
	var rows []rentalRow
	if err := r.store.Query(ctx, rentalPartition, nil, &rows); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to scan rentals", err)
	}

	rentals := make([]*rental.Rental, len(rows))
	for i, row := range rows {
		rentals[i] = rentalFromRow(row)
	}
	return rentals, nil
}

func rentalFromRow(row rentalRow) *rental.Rental {
	return converter.ToRental(
		row.ID,
		row.VehiclePlate,
		row.ClientID,
		row.StartDate,
		row.EndDate,
		row.TotalValue,
		row.Status,
		row.Brand,
		row.Model,
	)
}
