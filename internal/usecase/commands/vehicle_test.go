//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	reqdto "locadora-api/internal/handler/dto/request"
	"locadora-api/internal/infra/blobstore"
	"locadora-api/internal/infra/repository"
	"locadora-api/internal/infra/tablestore"
	"locadora-api/internal/pkg/errs"
	"locadora-api/internal/usecase/commands"
	"locadora-api/tests/common/builder"

	"github.com/stretchr/testify/suite"
)

type VehicleCommandsTestSuite struct {
	suite.Suite
	ctx   context.Context
	repo  *repository.VehicleRepository
	blobs *blobstore.MemoryStore
	cmds  commands.VehicleCommands
}

func (s *VehicleCommandsTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := tablestore.NewMemoryStore()

	s.ctx = context.Background()
	s.repo = repository.NewVehicleRepository(store, logger)
	s.blobs = blobstore.NewMemoryStore("http://blobs.local")
	s.cmds = commands.NewVehicleCommands(s.repo, s.blobs, logger)
}

func TestVehicleCommandsSuite(t *testing.T) {
	suite.Run(t, new(VehicleCommandsTestSuite))
}

func (s *VehicleCommandsTestSuite) TestRegister() {
	s.Run("register without image", func() {
		req := builder.NewVehicleBuilder().BuildRegisterRequestDTO()
		s.Require().NoError(s.cmds.Register(s.ctx, req, nil))

		got, err := s.repo.FindByPlate(s.ctx, req.Plate)
		s.Require().NoError(err)
		s.Empty(got.ImageURL)
		s.True(got.Available)
	})

	s.Run("register with image persists the blob URL", func() {
		req := builder.NewVehicleBuilder().WithPlate("IMG0001").BuildRegisterRequestDTO()
		image := &commands.UploadedImage{
			Filename:    "uno.jpg",
			ContentType: "image/jpeg",
			Data:        []byte("fake-jpeg"),
		}

		s.Require().NoError(s.cmds.Register(s.ctx, req, image))

		got, err := s.repo.FindByPlate(s.ctx, "IMG0001")
		s.Require().NoError(err)
		s.True(strings.HasPrefix(got.ImageURL, "http://blobs.local/vehicles/"))
		s.True(strings.HasSuffix(got.ImageURL, ".jpg"))
	})

	s.Run("explicit availability overrides the default", func() {
		req := builder.NewVehicleBuilder().WithPlate("OFF0001").WithAvailable(false).BuildRegisterRequestDTO()
		s.Require().NoError(s.cmds.Register(s.ctx, req, nil))

		got, err := s.repo.FindByPlate(s.ctx, "OFF0001")
		s.Require().NoError(err)
		s.False(got.Available)
	})

	s.Run("missing required fields", func() {
		err := s.cmds.Register(s.ctx, reqdto.RegisterVehicleRequest{Plate: "X", Brand: "", Model: "Y"}, nil)
		s.Require().True(errs.Is(err, commands.ErrVehicleValidation), "got %v", err)
	})
}

func (s *VehicleCommandsTestSuite) TestUploadImage() {
	s.Run("extension is carried over for known image types", func() {
		url, err := s.cmds.UploadImage(s.ctx, commands.UploadedImage{
			Filename:    "photo.PNG",
			ContentType: "image/png",
			Data:        []byte("png-bytes"),
		})
		s.Require().NoError(err)
		s.True(strings.HasSuffix(url, ".png"))
	})

	s.Run("unknown extensions are stripped", func() {
		url, err := s.cmds.UploadImage(s.ctx, commands.UploadedImage{
			Filename:    "payload.exe",
			ContentType: "application/octet-stream",
			Data:        []byte("x"),
		})
		s.Require().NoError(err)
		s.False(strings.HasSuffix(url, ".exe"))
	})

	s.Run("object is stored under the returned key", func() {
		url, err := s.cmds.UploadImage(s.ctx, commands.UploadedImage{
			Filename:    "car.webp",
			ContentType: "image/webp",
			Data:        []byte("webp-bytes"),
		})
		s.Require().NoError(err)

		key := strings.TrimPrefix(url, "http://blobs.local/")
		data, ok := s.blobs.Object(key)
		s.Require().True(ok)
		s.Equal([]byte("webp-bytes"), data)
	})
}
