package snake

import (
	"math/rand"

	"github.com/arcadeworks/tui-snake/internal/core"
)

// Spawner places food on unoccupied interior cells. The random source is
// injected so spawning is deterministic under a fixed seed.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner backed by the given random source.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// randomCell returns a uniformly random interior cell.
func (s *Spawner) randomCell(b core.Bounds) core.Point {
	return core.Point{
		X: 1 + s.rng.Intn(b.W-1),
		Y: 1 + s.rng.Intn(b.H-1),
	}
}

// PlaceFood samples random interior cells until one is found that is neither
// occupied nor equal to avoid (avoid may be nil). Callers must not invoke it
// when no free cell exists.
func (s *Spawner) PlaceFood(occupied func(core.Point) bool, avoid *core.Point, b core.Bounds) core.Point {
	for {
		p := s.randomCell(b)
		if occupied(p) {
			continue
		}
		if avoid != nil && p == *avoid {
			continue
		}
		return p
	}
}

// MaybeSpawnSuperFood rolls a 1-in-chance spawn and, on success, samples up
// to attempts cells for one that is neither occupied nor equal to avoid.
// Returns the position, the initial ttl and true on success. The bounded
// retry deliberately tolerates a missed spawn even when free cells exist.
func (s *Spawner) MaybeSpawnSuperFood(occupied func(core.Point) bool, avoid core.Point, b core.Bounds, chance, attempts, ttl int) (core.Point, int, bool) {
	if s.rng.Intn(chance) != 0 {
		return core.Point{}, 0, false
	}
	for i := 0; i < attempts; i++ {
		p := s.randomCell(b)
		if occupied(p) || p == avoid {
			continue
		}
		return p, ttl, true
	}
	return core.Point{}, 0, false
}
