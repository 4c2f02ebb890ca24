package snake

import "time"

// State is the outcome of the tick engine's state machine.
type State int

const (
	Alive State = iota
	Dead
)

func (s State) String() string {
	switch s {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Cause records why a session ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "unknown"
	}
}

// Accumulator turns irregular elapsed time into a fixed cadence of steps.
// Time is consumed one interval at a time, only once the budget strictly
// exceeds the interval.
type Accumulator struct {
	interval time.Duration
	budget   time.Duration
}

// NewAccumulator creates an accumulator firing every interval.
func NewAccumulator(interval time.Duration) Accumulator {
	return Accumulator{interval: interval}
}

// Add feeds elapsed time into the budget. Negative values are ignored.
func (a *Accumulator) Add(elapsed time.Duration) {
	if elapsed > 0 {
		a.budget += elapsed
	}
}

// Next consumes one interval and reports true if the budget exceeded it.
// Callers loop on Next to catch up after long frames.
func (a *Accumulator) Next() bool {
	if a.interval <= 0 || a.budget <= a.interval {
		return false
	}
	a.budget -= a.interval
	return true
}

// Budget returns the time accumulated but not yet consumed.
func (a *Accumulator) Budget() time.Duration {
	return a.budget
}

// Step moves the chain one cell in dir, unless the candidate head hits a
// wall or the pre-move body, in which case the chain is left untouched and
// Dead is returned with the cause.
func Step(c *Chain, dir Direction, width, height int) (State, Cause) {
	candidate := c.Head().Add(dir)

	if CollidesWithSelf(candidate, c) {
		return Dead, CauseSelf
	}
	if CollidesWithWall(candidate, width, height) {
		return Dead, CauseWall
	}

	c.Advance(candidate)
	return Alive, CauseNone
}
