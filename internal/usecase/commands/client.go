package commands

import (
	"context"
	"log/slog"

	"locadora-api/internal/domain/client"
	reqdto "locadora-api/internal/handler/dto/request"
	"locadora-api/internal/infra"
	"locadora-api/internal/pkg/errs"
	"locadora-api/internal/pkg/patch"
	"locadora-api/internal/pkg/rowid"
)

var (
	ErrClientValidation       = errs.New("client validation failed")
	ErrClientNotFound         = errs.New("client not found")
	ErrClientHasActiveRentals = errs.New("client has active rentals")
)

type ClientCommands interface {
	Register(ctx context.Context, req reqdto.RegisterClientRequest) (string, error)
	Update(ctx context.Context, id string, req reqdto.UpdateClientRequest) error
	Delete(ctx context.Context, id string) error
}

type clientCommandsImpl struct {
	clientRepo ClientRepository
	rentalRepo RentalRepository
	idGen      *rowid.Generator
	logger     *slog.Logger
}

func NewClientCommands(
	clientRepo ClientRepository,
	rentalRepo RentalRepository,
	idGen *rowid.Generator,
	logger *slog.Logger,
) ClientCommands {
	return &clientCommandsImpl{
		clientRepo: clientRepo,
		rentalRepo: rentalRepo,
		idGen:      idGen,
		logger:     logger,
	}
}

func (c *clientCommandsImpl) Register(ctx context.Context, req reqdto.RegisterClientRequest) (string, error) {
	entity, err := client.New(c.idGen.Next(), req.Name, req.Email, req.Phone)
	if err != nil {
		return "", errs.Mark(err, ErrClientValidation)
	}

	if err := c.clientRepo.Create(ctx, entity); err != nil {
		return "", errs.Wrap(err, "failed to register client")
	}
	return entity.ID, nil
}

// Update merges only the fields present in the request.
func (c *clientCommandsImpl) Update(ctx context.Context, id string, req reqdto.UpdateClientRequest) error {
	attrs := map[string]any{}
	patch.SetIfPresent(attrs, "nome", req.Name)
	patch.SetIfPresent(attrs, "email", req.Email)
	patch.SetIfPresent(attrs, "telefone", req.Phone)

	if err := c.clientRepo.Update(ctx, id, attrs); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrClientNotFound
		}
		return errs.Wrap(err, "failed to update client")
	}
	return nil
}

// Delete refuses while any rental of this client is still active. The guard
// is a linear scan over the rental collection, short-circuiting on the first
// active match.
func (c *clientCommandsImpl) Delete(ctx context.Context, id string) error {
	if _, err := c.clientRepo.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrClientNotFound
		}
		return errs.Wrap(err, "failed to look up client")
	}

	rentals, err := c.rentalRepo.FindAll(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to scan rentals")
	}
	for _, rent := range rentals {
		if rent.ClientID == id && rent.IsActive() {
			return ErrClientHasActiveRentals
		}
	}

	if err := c.clientRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrClientNotFound
		}
		return errs.Wrap(err, "failed to delete client")
	}
	return nil
}
