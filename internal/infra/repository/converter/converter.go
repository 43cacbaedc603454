// Package converter maps stored rows to domain entities. Kept separate from
// the repositories so row layout changes stay out of the data-access logic.
package converter

import (
	"locadora-api/internal/domain/client"
	"locadora-api/internal/domain/rental"
	"locadora-api/internal/domain/vehicle"
)

func ToVehicle(plate, brand, model string, year int, dailyRate float64, imageURL string, available bool) *vehicle.Vehicle {
	return &vehicle.Vehicle{
		Plate:     plate,
		Brand:     brand,
		Model:     model,
		Year:      year,
		DailyRate: dailyRate,
		ImageURL:  imageURL,
		Available: available,
	}
}

func ToClient(id, name, email, phone string) *client.Client {
	return &client.Client{
		ID:    id,
		Name:  name,
		Email: email,
		Phone: phone,
	}
}

func ToRental(id, vehiclePlate, clientID, startDate, endDate string, totalValue float64, status, brand, model string) *rental.Rental {
	return &rental.Rental{
		ID:           id,
		VehiclePlate: vehiclePlate,
		ClientID:     clientID,
		StartDate:    startDate,
		EndDate:      endDate,
		TotalValue:   totalValue,
		Status:       rental.Status(status),
		Brand:        brand,
		Model:        model,
	}
}
