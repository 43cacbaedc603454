// Package rowid issues the timestamp-derived row keys used for clients and
// rentals. Keys are zero-padded so lexicographic order matches creation order.
package rowid

import (
	"fmt"
	"sync"

	"locadora-api/internal/pkg/clock"
)

type Generator struct {
	mu    sync.Mutex
	clock clock.Clock
	last  int64
}

func NewGenerator(clock clock.Clock) *Generator {
	return &Generator{clock: clock}
}

// Next returns a fresh token. Two calls within the same clock tick still get
// distinct tokens.
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ns := g.clock.Now().UnixNano()
	if ns <= g.last {
		ns = g.last + 1
	}
	g.last = ns

	return fmt.Sprintf("%020d", ns)
}
