package snake

import "time"

// Session holds all mutable state of one game: the chain, the current
// direction, the item, the score and the time accumulator.
type Session struct {
	width  int
	height int
	rng    Rand

	chain     *Chain
	direction Direction
	item      Position
	hasItem   bool
	score     int
	clock     Accumulator
	ticks     uint64

	state  State
	cause  Cause
	events []Event
}

// NewSession starts a game on the standard board: a vertical chain of
// InitialLength segments with its head at the center, moving up, and one
// item placed on a free cell.
func NewSession(rng Rand) *Session {
	return newSession(Width, Height, rng)
}

func newSession(width, height int, rng Rand) *Session {
	s := &Session{
		width:     width,
		height:    height,
		rng:       rng,
		chain:     NewChain(Position{X: width / 2, Y: height / 2}, InitialLength),
		direction: DirUp,
		clock:     NewAccumulator(TickInterval),
		state:     Alive,
	}
	s.score = s.chain.Len()
	s.placeItem()
	return s
}

// SetDirection overwrites the current direction. No check is made against
// the direction of travel, so reversing into the body is fatal on the next
// step.
func (s *Session) SetDirection(d Direction) {
	s.direction = d
}

// Tick feeds elapsed time to the engine and performs every step the
// accumulated budget allows. After each step the head is checked against
// the item. Once Dead, further calls do nothing.
func (s *Session) Tick(elapsed time.Duration) State {
	if s.state == Dead {
		return Dead
	}

	s.clock.Add(elapsed)
	for s.clock.Next() {
		state, cause := Step(s.chain, s.direction, s.width, s.height)
		if state == Dead {
			s.state = Dead
			s.cause = cause
			s.events = append(s.events, DiedEvent{Cause: cause, Score: s.score, Ticks: s.ticks})
			return Dead
		}
		s.ticks++

		if s.hasItem && CollidesWithItem(s.chain.Head(), s.item) {
			s.OnItemEaten()
		}
	}
	return Alive
}

// OnItemEaten grows the chain by one segment, increments the score and
// places a new item.
func (s *Session) OnItemEaten() {
	at := s.item
	s.chain.Grow()
	s.score++
	s.events = append(s.events, ItemEatenEvent{At: at, Score: s.score, Length: s.chain.Len()})
	s.placeItem()
}

func (s *Session) placeItem() {
	pos, ok := PlaceItem(s.chain, s.width, s.height, s.rng)
	s.item = pos
	s.hasItem = ok
	if !ok {
		s.events = append(s.events, BoardFullEvent{Length: s.chain.Len()})
	}
}

// State returns Alive or Dead.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// DrainEvents returns the events recorded since the last call.
func (s *Session) DrainEvents() []Event {
	events := s.events
	s.events = nil
	return events
}
