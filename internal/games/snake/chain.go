package snake

// Chain is the snake body: an append-only sequence of positions, head at
// index 0. Segments are never removed during a session.
type Chain struct {
	cells []Position
}

// NewChain creates a chain of the given length stacked vertically below
// head, so the head leads when moving up.
func NewChain(head Position, length int) *Chain {
	length = max(1, length)
	cells := make([]Position, length)
	for i := range cells {
		cells[i] = Position{X: head.X, Y: head.Y + i}
	}
	return &Chain{cells: cells}
}

// Advance moves p into the head slot; every other segment takes the
// position previously held by its predecessor and the old tail position
// is discarded. Length is unchanged.
func (c *Chain) Advance(p Position) {
	copy(c.cells[1:], c.cells[:len(c.cells)-1])
	c.cells[0] = p
}

// Grow appends a segment on top of the current tail. It is pulled into
// place by the next Advance.
func (c *Chain) Grow() {
	c.cells = append(c.cells, c.Tail())
}

// Contains reports whether any segment occupies p.
func (c *Chain) Contains(p Position) bool {
	for _, seg := range c.cells {
		if seg == p {
			return true
		}
	}
	return false
}

// Head returns the leading segment's position.
func (c *Chain) Head() Position {
	return c.cells[0]
}

// Tail returns the last segment's position.
func (c *Chain) Tail() Position {
	return c.cells[len(c.cells)-1]
}

// Len returns the number of segments.
func (c *Chain) Len() int {
	return len(c.cells)
}

// Positions returns a copy of the segment positions, head first.
func (c *Chain) Positions() []Position {
	out := make([]Position, len(c.cells))
	copy(out, c.cells)
	return out
}

// Each calls fn for every segment, head first.
func (c *Chain) Each(fn func(i int, p Position)) {
	for i, p := range c.cells {
		fn(i, p)
	}
}
