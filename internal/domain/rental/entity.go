package rental

import (
	"errors"
	"strings"
)

var (
	ErrEmptyVehiclePlate = errors.New("vehicle plate is required")
	ErrEmptyClientID     = errors.New("client id is required")
)

// SnapshotPlaceholder fills the brand/model snapshot when the referenced
// vehicle does not exist at creation time. Orphaned rentals are tolerated.
const SnapshotPlaceholder = "---"

// Rental references its vehicle by plate and its client by id. Both are weak
// references: the records may be gone while the rental lives on. Brand and
// Model are a creation-time snapshot, never synced with later vehicle edits.
type Rental struct {
	ID           string
	VehiclePlate string
	ClientID     string
	StartDate    string
	EndDate      string
	TotalValue   float64
	Status       Status
	Brand        string
	Model        string
}

func New(id, vehiclePlate, clientID, startDate, endDate string, totalValue float64, brand, model string) (*Rental, error) {
	if strings.TrimSpace(vehiclePlate) == "" {
		return nil, ErrEmptyVehiclePlate
	}
	if strings.TrimSpace(clientID) == "" {
		return nil, ErrEmptyClientID
	}

	if brand == "" {
		brand = SnapshotPlaceholder
	}
	if model == "" {
		model = SnapshotPlaceholder
	}

	return &Rental{
		ID:           id,
		VehiclePlate: vehiclePlate,
		ClientID:     clientID,
		StartDate:    startDate,
		EndDate:      endDate,
		TotalValue:   totalValue,
		Status:       StatusActive,
		Brand:        brand,
		Model:        model,
	}, nil
}

// Cancel flips the status. Cancelling an already-cancelled rental is a
// no-op; the status never returns to active.
func (r *Rental) Cancel() {
	r.Status = StatusCancelled
}

func (r *Rental) IsActive() bool {
	return r.Status == StatusActive
}
