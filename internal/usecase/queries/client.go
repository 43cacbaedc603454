package queries

import (
	"context"

	"locadora-api/internal/domain/client"
	"locadora-api/internal/pkg/errs"
)

type ClientReadStore interface {
	FindAll(ctx context.Context) ([]*client.Client, error)
	FindByID(ctx context.Context, id string) (*client.Client, error)
}

type ClientQueries interface {
	List(ctx context.Context) ([]*ClientView, error)
}

type clientQueriesImpl struct {
	readStore ClientReadStore
}

func NewClientQueries(readStore ClientReadStore) ClientQueries {
	return &clientQueriesImpl{
		readStore: readStore,
	}
}

func (q *clientQueriesImpl) List(ctx context.Context) ([]*ClientView, error) {
	clients, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list clients")
	}

	views := make([]*ClientView, len(clients))
	for i, c := range clients {
		views[i] = FromClient(c)
	}
	return views, nil
}

func FromClient(c *client.Client) *ClientView {
	return &ClientView{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
}
