package store

import (
	"sync"
	"time"
)

// idGen deriva ids del instante de creación (Unix ms) garantizando que sean
// estrictamente crecientes en el proceso y mayores que floor.
type idGen struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func newIDGen(now func() time.Time) *idGen {
	return &idGen{now: now}
}

func (g *idGen) next(floor int64) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	if id <= floor {
		id = floor + 1
	}
	g.last = id
	return id
}
