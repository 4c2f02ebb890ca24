package snake

// Event is something notable that happened during a Tick. The platform
// drains events after each tick to log them.
type Event interface {
	sessionEvent()
}

// ItemEatenEvent is emitted when the head lands on the item.
type ItemEatenEvent struct {
	At     Position
	Score  int
	Length int
}

func (ItemEatenEvent) sessionEvent() {}

// BoardFullEvent is emitted when no free cell is left for a new item.
type BoardFullEvent struct {
	Length int
}

func (BoardFullEvent) sessionEvent() {}

// DiedEvent is emitted once, when the session transitions to Dead.
type DiedEvent struct {
	Cause Cause
	Score int
	Ticks uint64
}

func (DiedEvent) sessionEvent() {}
