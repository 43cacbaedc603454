//go:build unit || e2e

package builder

import (
	domvehicle "locadora-api/internal/domain/vehicle"
	reqdto "locadora-api/internal/handler/dto/request"
	"locadora-api/internal/usecase/queries"
)

type VehicleBuilder struct {
	Plate     string
	Brand     string
	Model     string
	Year      int
	DailyRate float64
	ImageURL  string
	Available bool
}

func NewVehicleBuilder() *VehicleBuilder {
	return &VehicleBuilder{
		Plate:     "ABC1234",
		Brand:     "Fiat",
		Model:     "Uno",
		Year:      2020,
		DailyRate: 150,
		Available: true,
	}
}

func (b *VehicleBuilder) With(mutate func(*VehicleBuilder)) *VehicleBuilder {
	mutate(b)
	return b
}

func (b *VehicleBuilder) WithPlate(plate string) *VehicleBuilder {
	b.Plate = plate
	return b
}

func (b *VehicleBuilder) WithBrand(brand string) *VehicleBuilder {
	b.Brand = brand
	return b
}

func (b *VehicleBuilder) WithModel(model string) *VehicleBuilder {
	b.Model = model
	return b
}

func (b *VehicleBuilder) WithAvailable(available bool) *VehicleBuilder {
	b.Available = available
	return b
}

func (b *VehicleBuilder) BuildDomain() (*domvehicle.Vehicle, error) {
	v, err := domvehicle.New(b.Plate, b.Brand, b.Model, b.Year, b.DailyRate, b.ImageURL)
	if err != nil {
		return nil, err
	}
	v.Available = b.Available
	return v, nil
}

func (b *VehicleBuilder) BuildRegisterRequestDTO() reqdto.RegisterVehicleRequest {
	available := b.Available
	return reqdto.RegisterVehicleRequest{
		Plate:     b.Plate,
		Brand:     b.Brand,
		Model:     b.Model,
		Year:      b.Year,
		DailyRate: b.DailyRate,
		Available: &available,
	}
}

func (b *VehicleBuilder) BuildView() *queries.VehicleView {
	return &queries.VehicleView{
		Plate:     b.Plate,
		Brand:     b.Brand,
		Model:     b.Model,
		Year:      b.Year,
		DailyRate: b.DailyRate,
		ImageURL:  b.ImageURL,
		Available: b.Available,
	}
}
