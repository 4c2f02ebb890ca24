package snake

import "time"

// Snapshot is a read-only view of a session for rendering and tests.
type Snapshot struct {
	Width     int
	Height    int
	Segments  []Position // Head first
	Item      Position
	HasItem   bool
	Score     int
	Length    int
	Direction Direction
	State     State
	Cause     Cause
	Ticks     uint64
	Pending   time.Duration // Accumulated time not yet consumed by a step
}

// Snapshot returns the current session snapshot. Segments is a copy.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Width:     s.width,
		Height:    s.height,
		Segments:  s.chain.Positions(),
		Item:      s.item,
		HasItem:   s.hasItem,
		Score:     s.score,
		Length:    s.chain.Len(),
		Direction: s.direction,
		State:     s.state,
		Cause:     s.cause,
		Ticks:     s.ticks,
		Pending:   s.clock.Budget(),
	}
}

// Head returns the head position of the snapshot.
func (s Snapshot) Head() Position {
	if len(s.Segments) == 0 {
		return Position{}
	}
	return s.Segments[0]
}
