package commands

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"locadora-api/internal/domain/vehicle"
	reqdto "locadora-api/internal/handler/dto/request"
	"locadora-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrVehicleValidation = errs.New("vehicle validation failed")

// UploadedImage carries one multipart file part.
type UploadedImage struct {
	Filename    string
	ContentType string
	Data        []byte
}

type VehicleCommands interface {
	// Register stores the vehicle; when image is non-nil it is uploaded
	// first and its URL persisted with the record.
	Register(ctx context.Context, req reqdto.RegisterVehicleRequest, image *UploadedImage) error
	UploadImage(ctx context.Context, image UploadedImage) (string, error)
}

type vehicleCommandsImpl struct {
	vehicleRepo VehicleRepository
	blobs       BlobStore
	logger      *slog.Logger
}

func NewVehicleCommands(vehicleRepo VehicleRepository, blobs BlobStore, logger *slog.Logger) VehicleCommands {
	return &vehicleCommandsImpl{
		vehicleRepo: vehicleRepo,
		blobs:       blobs,
		logger:      logger,
	}
}

func (c *vehicleCommandsImpl) Register(ctx context.Context, req reqdto.RegisterVehicleRequest, image *UploadedImage) error {
	imageURL := ""
	if image != nil {
		url, err := c.UploadImage(ctx, *image)
		if err != nil {
			return errs.Wrap(err, "failed to upload vehicle image")
		}
		imageURL = url
	}

	entity, err := vehicle.New(req.Plate, req.Brand, req.Model, req.Year, req.DailyRate, imageURL)
	if err != nil {
		return errs.Mark(err, ErrVehicleValidation)
	}
	if req.Available != nil {
		entity.Available = *req.Available
	}

	if err := c.vehicleRepo.Create(ctx, entity); err != nil {
		return errs.Wrap(err, "failed to register vehicle")
	}
	return nil
}

func (c *vehicleCommandsImpl) UploadImage(ctx context.Context, image UploadedImage) (string, error) {
	key := "vehicles/" + uuid.NewString() + imageExtension(image.Filename)

	url, err := c.blobs.Put(ctx, key, image.ContentType, image.Data)
	if err != nil {
		return "", errs.Wrap(err, "failed to store image")
	}
	return url, nil
}

func imageExtension(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext
	default:
		return ""
	}
}
