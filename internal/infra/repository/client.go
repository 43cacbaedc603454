package repository

import (
	"context"
	"errors"
	"log/slog"

	"locadora-api/internal/domain/client"
	"locadora-api/internal/infra"
	"locadora-api/internal/infra/repository/converter"
	"locadora-api/internal/infra/tablestore"
)

type ClientRepository struct {
	store  tablestore.Store
	logger *slog.Logger
}

func NewClientRepository(store tablestore.Store, logger *slog.Logger) *ClientRepository {
	return &ClientRepository{
		store:  store,
		logger: logger,
	}
}

func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	row := clientRow{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}

	if err := r.store.Create(ctx, clientPartition, c.ID, row); err != nil {
		if errors.Is(err, tablestore.ErrItemExists) {
			return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "client id already taken", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to create client", err)
	}
	return nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*client.Client, error) {
	var row clientRow
	if err := r.store.Get(ctx, clientPartition, id, &row); err != nil {
		if errors.Is(err, tablestore.ErrItemNotFound) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "client not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to find client", err)
	}
	return clientFromRow(row), nil
}

// Update merges only the provided attributes (partial update semantics).
func (r *ClientRepository) Update(ctx context.Context, id string, attrs map[string]any) error {
	if len(attrs) == 0 {
		return nil
	}

	if err := r.store.Merge(ctx, clientPartition, id, attrs); err != nil {
		if errors.Is(err, tablestore.ErrItemNotFound) {
			return infra.WrapRepoErr(r.logger, infra.KindNotFound, "client not found", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to update client", err)
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, clientPartition, id); err != nil {
		if errors.Is(err, tablestore.ErrItemNotFound) {
			return infra.WrapRepoErr(r.logger, infra.KindNotFound, "client not found", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to delete client", err)
	}
	return nil
}

func (r *ClientRepository) FindAll(ctx context.Context) ([]*client.Client, error) {
	var rows []clientRow
	if err := r.store.Query(ctx, clientPartition, nil, &rows); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to scan clients", err)
	}

	clients := make([]*client.Client, len(rows))
	for i, row := range rows {
		clients[i] = clientFromRow(row)
	}
	return clients, nil
}

func clientFromRow(row clientRow) *client.Client {
	return converter.ToClient(row.ID, row.Name, row.Email, row.Phone)
}
