package response

import (
	"locadora-api/internal/usecase/queries"
)

type VehicleResponse struct {
	Plate     string  `json:"placa"`
	Brand     string  `json:"marca"`
	Model     string  `json:"modelo"`
	Year      int     `json:"ano"`
	DailyRate float64 `json:"diaria"`
	ImageURL  string  `json:"imagem,omitempty"`
	Available bool    `json:"disponivel"`
}

func FromVehicleView(view *queries.VehicleView) *VehicleResponse {
	return &VehicleResponse{
		Plate:     view.Plate,
		Brand:     view.Brand,
		Model:     view.Model,
		Year:      view.Year,
		DailyRate: view.DailyRate,
		ImageURL:  view.ImageURL,
		Available: view.Available,
	}
}
