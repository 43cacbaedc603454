package response

import (
	"locadora-api/internal/usecase/queries"
)

// ActiveRentalResponse nests the current vehicle/client state; either may be
// null when the rental's reference is dangling.
type ActiveRentalResponse struct {
	ID         string           `json:"id"`
	StartDate  string           `json:"dataInicio"`
	EndDate    string           `json:"dataFim"`
	TotalValue float64          `json:"valorTotal"`
	Status     string           `json:"status"`
	Vehicle    *VehicleResponse `json:"veiculo"`
	Client     *ClientResponse  `json:"cliente"`
}

func FromActiveRentalView(view *queries.ActiveRentalView) *ActiveRentalResponse {
	resp := &ActiveRentalResponse{
		ID:         view.ID,
		StartDate:  view.StartDate,
		EndDate:    view.EndDate,
		TotalValue: view.TotalValue,
		Status:     view.Status,
	}
	if view.Vehicle != nil {
		resp.Vehicle = FromVehicleView(view.Vehicle)
	}
	if view.Client != nil {
		resp.Client = FromClientView(view.Client)
	}
	return resp
}
