//go:build unit

package rowid_test

import (
	"testing"
	"time"

	"locadora-api/internal/pkg/clock"
	"locadora-api/internal/pkg/rowid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	t.Run("zero padded to a fixed width", func(t *testing.T) {
		gen := rowid.NewGenerator(clock.NewMockClock(time.Unix(0, 42)))
		assert.Equal(t, "00000000000000000042", gen.Next())
	})

	t.Run("a frozen clock still yields distinct ids", func(t *testing.T) {
		gen := rowid.NewGenerator(clock.NewMockClock(time.Unix(0, 1000)))

		seen := make(map[string]struct{})
		for range 50 {
			id := gen.Next()
			_, dup := seen[id]
			require.False(t, dup, "duplicate id %s", id)
			seen[id] = struct{}{}
		}
	})

	t.Run("ids sort lexicographically in creation order", func(t *testing.T) {
		gen := rowid.NewGenerator(clock.NewRealClock())

		prev := gen.Next()
		for range 100 {
			next := gen.Next()
			require.Len(t, next, 20)
			assert.Greater(t, next, prev)
			prev = next
		}
	})
}
