//go:build unit || e2e

package builder

import (
	domrental "locadora-api/internal/domain/rental"
	reqdto "locadora-api/internal/handler/dto/request"
)

type RentalBuilder struct {
	ID           string
	VehiclePlate string
	ClientID     string
	StartDate    string
	EndDate      string
	TotalValue   float64
	Brand        string
	Model        string
}

func NewRentalBuilder() *RentalBuilder {
	return &RentalBuilder{
		ID:           "00001756400000000001",
		VehiclePlate: "ABC1234",
		ClientID:     "00001756400000000000",
		StartDate:    "2026-09-01",
		EndDate:      "2026-09-05",
		TotalValue:   600,
		Brand:        "Fiat",
		Model:        "Uno",
	}
}

func (b *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(b)
	return b
}

func (b *RentalBuilder) WithVehiclePlate(plate string) *RentalBuilder {
	b.VehiclePlate = plate
	return b
}

func (b *RentalBuilder) WithClientID(id string) *RentalBuilder {
	b.ClientID = id
	return b
}

func (b *RentalBuilder) WithSnapshot(brand, model string) *RentalBuilder {
	b.Brand = brand
	b.Model = model
	return b
}

func (b *RentalBuilder) BuildDomain() (*domrental.Rental, error) {
	return domrental.New(b.ID, b.VehiclePlate, b.ClientID, b.StartDate, b.EndDate, b.TotalValue, b.Brand, b.Model)
}

func (b *RentalBuilder) BuildCreateRequestDTO() reqdto.CreateRentalRequest {
	return reqdto.CreateRentalRequest{
		VehiclePlate: b.VehiclePlate,
		ClientID:     b.ClientID,
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		TotalValue:   b.TotalValue,
	}
}
