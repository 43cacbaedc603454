package commands

import (
	"context"

	"locadora-api/internal/domain/client"
	"locadora-api/internal/domain/rental"
	"locadora-api/internal/domain/vehicle"
)

// Write-side ports, implemented by internal/infra/repository.

type VehicleRepository interface {
	Create(ctx context.Context, v *vehicle.Vehicle) error
	FindByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error)
	SetAvailability(ctx context.Context, plate string, available bool) error
}

type ClientRepository interface {
	Create(ctx context.Context, c *client.Client) error
	FindByID(ctx context.Context, id string) (*client.Client, error)
	Update(ctx context.Context, id string, attrs map[string]any) error
	Delete(ctx context.Context, id string) error
}

type RentalRepository interface {
	Create(ctx context.Context, r *rental.Rental) error
	FindByID(ctx context.Context, id string) (*rental.Rental, error)
	SetStatus(ctx context.Context, id string, status rental.Status) error
	FindAll(ctx context.Context) ([]*rental.Rental, error)
}

type BlobStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}
