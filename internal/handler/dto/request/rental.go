package request

// CreateRentalRequest deliberately has no binding tags on placa/clienteId:
// presence is validated by the rental engine so the response carries its
// validation error, not a generic bind failure.
type CreateRentalRequest struct {
	VehiclePlate string  `json:"placa"`
	ClientID     string  `json:"clienteId"`
	StartDate    string  `json:"dataInicio"`
	EndDate      string  `json:"dataFim"`
	TotalValue   float64 `json:"valor"`
}

type CancelRentalRequest struct {
	RentalID string `json:"locacaoId" binding:"required"`
}
