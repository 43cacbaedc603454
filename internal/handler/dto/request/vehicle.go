package request

// RegisterVehicleRequest accepts JSON or multipart form (the latter when an
// image file rides along).
type RegisterVehicleRequest struct {
	Plate     string  `json:"placa" form:"placa" binding:"required"`
	Brand     string  `json:"marca" form:"marca" binding:"required"`
	Model     string  `json:"modelo" form:"modelo" binding:"required"`
	Year      int     `json:"ano" form:"ano"`
	DailyRate float64 `json:"diaria" form:"diaria"`
	Available *bool   `json:"disponivel,omitempty" form:"disponivel"`
}
