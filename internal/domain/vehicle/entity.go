package vehicle

import (
	"errors"
	"strings"
)

var (
	ErrEmptyPlate = errors.New("vehicle plate cannot be empty")
	ErrEmptyBrand = errors.New("vehicle brand cannot be empty")
	ErrEmptyModel = errors.New("vehicle model cannot be empty")
)

// Vehicle is keyed by its license plate. Available is flipped by the rental
// lifecycle, not by vehicle edits.
type Vehicle struct {
	Plate     string
	Brand     string
	Model     string
	Year      int
	DailyRate float64
	ImageURL  string
	Available bool
}

func New(plate, brand, model string, year int, dailyRate float64, imageURL string) (*Vehicle, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return nil, ErrEmptyPlate
	}
	if strings.TrimSpace(brand) == "" {
		return nil, ErrEmptyBrand
	}
	if strings.TrimSpace(model) == "" {
		return nil, ErrEmptyModel
	}

	return &Vehicle{
		Plate:     plate,
		Brand:     brand,
		Model:     model,
		Year:      year,
		DailyRate: dailyRate,
		ImageURL:  imageURL,
		Available: true,
	}, nil
}
