// Package snake implements the game-state engine of the snake game: the
// segment chain, collision queries, item placement and the fixed-rate tick
// engine. It has no terminal dependencies; the platform layer consumes
// read-only snapshots for rendering.
package snake

import "time"

// Board dimensions in grid cells.
const (
	Width  = 20
	Height = 20
)

// InitialLength is the number of segments a new chain starts with.
const InitialLength = 4

// TickInterval is the amount of accumulated time that must be exceeded
// before the snake advances by one cell.
const TickInterval = 200 * time.Millisecond

// Position is a grid cell, 0-indexed from the top-left corner.
type Position struct {
	X, Y int
}

// Add returns p translated by the given direction's unit vector.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Vector()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Vector returns the unit vector for the direction. Y grows downwards.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
