package snake

// Rand is the source of randomness used for item placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// maxSampleAttempts bounds rejection sampling before falling back to a scan
// of the free cells.
const maxSampleAttempts = 64

// PlaceItem picks a uniformly random cell not occupied by the chain.
// Below half occupancy it samples random cells until one is free; above it,
// or when sampling keeps hitting the body, it chooses among the enumerated
// free cells. ok is false only when the chain fills the whole grid.
func PlaceItem(c *Chain, width, height int, rng Rand) (pos Position, ok bool) {
	area := width * height
	if area <= 0 {
		return Position{}, false
	}

	if c.Len()*2 <= area {
		for range maxSampleAttempts {
			p := Position{X: rng.Intn(width), Y: rng.Intn(height)}
			if !CollidesWithSelf(p, c) {
				return p, true
			}
		}
	}

	free := FreeCells(c, width, height)
	if len(free) == 0 {
		return Position{}, false
	}
	return free[rng.Intn(len(free))], true
}

// FreeCells returns every grid cell not occupied by the chain, row by row.
func FreeCells(c *Chain, width, height int) []Position {
	occupied := make(map[Position]bool, c.Len())
	c.Each(func(_ int, p Position) {
		occupied[p] = true
	})

	free := make([]Position, 0, max(0, width*height-len(occupied)))
	for y := range height {
		for x := range width {
			p := Position{X: x, Y: y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}
	return free
}
