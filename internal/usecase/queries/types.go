package queries

// Read models (DTO for read side)

type VehicleView struct {
	Plate     string
	Brand     string
	Model     string
	Year      int
	DailyRate float64
	ImageURL  string
	Available bool
}

type ClientView struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// ActiveRentalView joins a rental with the current state of its referenced
// vehicle and client. Either sub-view may be nil when the reference is
// dangling; the rental itself still appears.
type ActiveRentalView struct {
	ID         string
	StartDate  string
	EndDate    string
	TotalValue float64
	Status     string
	Vehicle    *VehicleView
	Client     *ClientView
}
