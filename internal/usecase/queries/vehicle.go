package queries

import (
	"context"

	"locadora-api/internal/domain/vehicle"
	"locadora-api/internal/pkg/errs"
)

type VehicleReadStore interface {
	FindAll(ctx context.Context) ([]*vehicle.Vehicle, error)
	FindAvailable(ctx context.Context) ([]*vehicle.Vehicle, error)
	FindByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error)
}

type VehicleQueries interface {
	// ListAvailable returns available vehicles, optionally narrowed by brand
	// and/or model equality. Empty filter strings pass everything through.
	ListAvailable(ctx context.Context, brand, model string) ([]*VehicleView, error)
	Brands(ctx context.Context) ([]string, error)
	ModelsByBrand(ctx context.Context, brand string) ([]string, error)
}

type vehicleQueriesImpl struct {
	readStore VehicleReadStore
}

func NewVehicleQueries(readStore VehicleReadStore) VehicleQueries {
	return &vehicleQueriesImpl{
		readStore: readStore,
	}
}

func (q *vehicleQueriesImpl) ListAvailable(ctx context.Context, brand, model string) ([]*VehicleView, error) {
	// Availability is filtered store-side; brand/model equality in memory.
	vehicles, err := q.readStore.FindAvailable(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list available vehicles")
	}

	views := make([]*VehicleView, 0, len(vehicles))
	for _, v := range vehicles {
		if brand != "" && v.Brand != brand {
			continue
		}
		if model != "" && v.Model != model {
			continue
		}
		views = append(views, FromVehicle(v))
	}
	return views, nil
}

func (q *vehicleQueriesImpl) Brands(ctx context.Context) ([]string, error) {
	vehicles, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to scan vehicles")
	}

	seen := make(map[string]struct{})
	brands := make([]string, 0)
	for _, v := range vehicles {
		if _, dup := seen[v.Brand]; dup {
			continue
		}
		seen[v.Brand] = struct{}{}
		brands = append(brands, v.Brand)
	}
	return brands, nil
}

func (q *vehicleQueriesImpl) ModelsByBrand(ctx context.Context, brand string) ([]string, error) {
	vehicles, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to scan vehicles")
	}

	seen := make(map[string]struct{})
	models := make([]string, 0)
	for _, v := range vehicles {
		if v.Brand != brand {
			continue
		}
		if _, dup := seen[v.Model]; dup {
			continue
		}
		seen[v.Model] = struct{}{}
		models = append(models, v.Model)
	}
	return models, nil
}

func FromVehicle(v *vehicle.Vehicle) *VehicleView {
	return &VehicleView{
		Plate:     v.Plate,
		Brand:     v.Brand,
		Model:     v.Model,
		Year:      v.Year,
		DailyRate: v.DailyRate,
		ImageURL:  v.ImageURL,
		Available: v.Available,
	}
}
