//go:build unit

package tablestore_test

import (
	"context"
	"sync"
	"testing"

	"locadora-api/internal/infra/tablestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name      string `dynamodbav:"nome"`
	Count     int    `dynamodbav:"total"`
	Available bool   `dynamodbav:"disponivel"`
}

func TestMemoryStore_CreateGet(t *testing.T) {
	ctx := context.Background()
	store := tablestore.NewMemoryStore()

	require.NoError(t, store.Create(ctx, "P", "r1", record{Name: "a", Count: 1, Available: true}))

	var got record
	require.NoError(t, store.Get(ctx, "P", "r1", &got))
	assert.Equal(t, record{Name: "a", Count: 1, Available: true}, got)

	t.Run("duplicate row key is rejected", func(t *testing.T) {
		err := store.Create(ctx, "P", "r1", record{Name: "b"})
		require.ErrorIs(t, err, tablestore.ErrItemExists)
	})

	t.Run("missing row", func(t *testing.T) {
		var out record
		err := store.Get(ctx, "P", "missing", &out)
		require.ErrorIs(t, err, tablestore.ErrItemNotFound)
	})

	t.Run("same row key in another partition is independent", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, "Q", "r1", record{Name: "other"}))
	})
}

func TestMemoryStore_Merge(t *testing.T) {
	ctx := context.Background()
	store := tablestore.NewMemoryStore()
	require.NoError(t, store.Create(ctx, "P", "r1", record{Name: "a", Count: 1, Available: true}))

	require.NoError(t, store.Merge(ctx, "P", "r1", map[string]any{"disponivel": false}))

	var got record
	require.NoError(t, store.Get(ctx, "P", "r1", &got))
	assert.False(t, got.Available)
	assert.Equal(t, "a", got.Name, "untouched attributes survive the merge")
	assert.Equal(t, 1, got.Count)

	t.Run("merge into missing row", func(t *testing.T) {
		err := store.Merge(ctx, "P", "missing", map[string]any{"disponivel": true})
		require.ErrorIs(t, err, tablestore.ErrItemNotFound)
	})

	t.Run("empty attrs is an existence check", func(t *testing.T) {
		require.NoError(t, store.Merge(ctx, "P", "r1", map[string]any{}))
		require.ErrorIs(t, store.Merge(ctx, "P", "missing", map[string]any{}), tablestore.ErrItemNotFound)
	})
}

func TestMemoryStore_EmptyKeys(t *testing.T) {
	ctx := context.Background()
	store := tablestore.NewMemoryStore()

	assert.ErrorIs(t, store.Create(ctx, "P", "", record{Name: "a"}), tablestore.ErrEmptyKey)
	assert.ErrorIs(t, store.Create(ctx, "", "r1", record{Name: "a"}), tablestore.ErrEmptyKey)

	var out record
	assert.ErrorIs(t, store.Get(ctx, "P", "", &out), tablestore.ErrEmptyKey)
	assert.ErrorIs(t, store.Merge(ctx, "P", "", map[string]any{"nome": "b"}), tablestore.ErrEmptyKey)
	assert.ErrorIs(t, store.Replace(ctx, "P", "", record{Name: "b"}), tablestore.ErrEmptyKey)
	assert.ErrorIs(t, store.Delete(ctx, "P", ""), tablestore.ErrEmptyKey)

	var list []record
	assert.ErrorIs(t, store.Query(ctx, "", nil, &list), tablestore.ErrEmptyKey)
}

func TestMemoryStore_Replace(t *testing.T) {
	ctx := context.Background()
	store := tablestore.NewMemoryStore()
	require.NoError(t, store.Create(ctx, "P", "r1", record{Name: "a", Count: 1}))

	require.NoError(t, store.Replace(ctx, "P", "r1", record{Name: "b"}))

	var got record
	require.NoError(t, store.Get(ctx, "P", "r1", &got))
	assert.Equal(t, "b", got.Name)
	assert.Zero(t, got.Count, "replace drops attributes absent from the new item")

	t.Run("replace creates when missing", func(t *testing.T) {
		require.NoError(t, store.Replace(ctx, "P", "r2", record{Name: "c"}))
		var out record
		require.NoError(t, store.Get(ctx, "P", "r2", &out))
		assert.Equal(t, "c", out.Name)
	})
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := tablestore.NewMemoryStore()
	require.NoError(t, store.Create(ctx, "P", "r1", record{Name: "a"}))

	require.NoError(t, store.Delete(ctx, "P", "r1"))

	var out record
	require.ErrorIs(t, store.Get(ctx, "P", "r1", &out), tablestore.ErrItemNotFound)
	require.ErrorIs(t, store.Delete(ctx, "P", "r1"), tablestore.ErrItemNotFound)
}

func TestMemoryStore_Query(t *testing.T) {
	ctx := context.Background()
	store := tablestore.NewMemoryStore()
	require.NoError(t, store.Create(ctx, "P", "r1", record{Name: "a", Available: true}))
	require.NoError(t, store.Create(ctx, "P", "r2", record{Name: "b", Available: false}))
	require.NoError(t, store.Create(ctx, "P", "r3", record{Name: "c", Available: true}))
	require.NoError(t, store.Create(ctx, "Q", "r1", record{Name: "z", Available: true}))

	t.Run("nil filter returns the whole partition", func(t *testing.T) {
		var got []record
		require.NoError(t, store.Query(ctx, "P", nil, &got))
		assert.Len(t, got, 3)
	})

	t.Run("equality filter narrows the scan", func(t *testing.T) {
		var got []record
		require.NoError(t, store.Query(ctx, "P", tablestore.Filter{"disponivel": true}, &got))
		require.Len(t, got, 2)
		for _, r := range got {
			assert.True(t, r.Available)
		}
	})

	t.Run("empty partition yields empty result", func(t *testing.T) {
		var got []record
		require.NoError(t, store.Query(ctx, "Empty", nil, &got))
		assert.Empty(t, got)
	})
}

// Reads snapshot the stored attribute maps, so merges running alongside
// Get/Query must not trip the race detector.
func TestMemoryStore_ConcurrentReadersAndMerges(t *testing.T) {
	ctx := context.Background()
	store := tablestore.NewMemoryStore()
	require.NoError(t, store.Create(ctx, "P", "r1", record{Name: "a", Count: 0, Available: true}))

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				assert.NoError(t, store.Merge(ctx, "P", "r1", map[string]any{"total": i}))
			}
		}()
	}
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				var got record
				assert.NoError(t, store.Get(ctx, "P", "r1", &got))
				var list []record
				assert.NoError(t, store.Query(ctx, "P", nil, &list))
			}
		}()
	}
	wg.Wait()
}
