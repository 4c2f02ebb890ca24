package snake

// CollidesWithSelf reports whether p is occupied by the chain as it is now,
// before any move is applied.
func CollidesWithSelf(p Position, c *Chain) bool {
	return c.Contains(p)
}

// CollidesWithWall reports whether p lies outside [0,width) x [0,height).
func CollidesWithWall(p Position, width, height int) bool {
	return p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height
}

// CollidesWithItem reports whether p is exactly the item position.
func CollidesWithItem(p, item Position) bool {
	return p == item
}
