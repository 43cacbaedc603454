//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"locadora-api/internal/infra/repository"
	"locadora-api/internal/infra/tablestore"
	"locadora-api/internal/usecase/queries"
	"locadora-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientList(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := repository.NewClientRepository(tablestore.NewMemoryStore(), logger)
	q := queries.NewClientQueries(repo)

	t.Run("empty store", func(t *testing.T) {
		views, err := q.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("lists every registered client", func(t *testing.T) {
		for i, name := range []string{"Maria", "João", "Ana"} {
			c, err := builder.NewClientBuilder().
				WithID("0000175640000000000" + string(rune('0'+i))).
				WithName(name).
				BuildDomain()
			require.NoError(t, err)
			require.NoError(t, repo.Create(ctx, c))
		}

		views, err := q.List(ctx)
		require.NoError(t, err)
		require.Len(t, views, 3)

		names := make([]string, len(views))
		for i, v := range views {
			names[i] = v.Name
		}
		assert.ElementsMatch(t, []string{"Maria", "João", "Ana"}, names)
	})
}
