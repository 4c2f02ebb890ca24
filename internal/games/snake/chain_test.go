package snake

import (
	"reflect"
	"testing"
)

func TestNewChainStacksVertically(t *testing.T) {
	c := NewChain(Position{X: 10, Y: 10}, 4)

	expected := []Position{{10, 10}, {10, 11}, {10, 12}, {10, 13}}
	if got := c.Positions(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Positions() = %v, expected %v", got, expected)
	}
	if c.Head() != (Position{10, 10}) {
		t.Errorf("Head() = %v, expected (10,10)", c.Head())
	}
	if c.Tail() != (Position{10, 13}) {
		t.Errorf("Tail() = %v, expected (10,13)", c.Tail())
	}
}

func TestChainAdvanceIsPureShift(t *testing.T) {
	c := NewChain(Position{X: 5, Y: 5}, 4)
	before := c.Positions()

	c.Advance(Position{X: 5, Y: 4})
	after := c.Positions()

	if len(after) != len(before) {
		t.Fatalf("Advance changed length: %d -> %d", len(before), len(after))
	}
	if after[0] != (Position{5, 4}) {
		t.Errorf("head = %v, expected (5,4)", after[0])
	}
	for i := 1; i < len(after); i++ {
		if after[i] != before[i-1] {
			t.Errorf("segment %d = %v, expected predecessor's old position %v", i, after[i], before[i-1])
		}
	}
}

func TestChainGrow(t *testing.T) {
	c := NewChain(Position{X: 5, Y: 5}, 4)
	tail := c.Tail()

	c.Grow()

	if c.Len() != 5 {
		t.Fatalf("Len() = %d, expected 5", c.Len())
	}
	if c.Tail() != tail {
		t.Errorf("new tail = %v, expected it to sit on old tail %v", c.Tail(), tail)
	}

	// The new segment is pulled into place by the next move.
	c.Advance(Position{X: 6, Y: 5})
	expected := []Position{{6, 5}, {5, 5}, {5, 6}, {5, 7}, {5, 8}}
	if got := c.Positions(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Positions() = %v, expected %v", got, expected)
	}
}

func TestChainLengthNeverShrinks(t *testing.T) {
	c := NewChain(Position{X: 10, Y: 10}, InitialLength)
	prev := c.Len()

	moves := []Direction{DirUp, DirUp, DirLeft, DirLeft, DirDown, DirLeft, DirUp}
	for i, d := range moves {
		if i%2 == 0 {
			c.Grow()
			if c.Len() != prev+1 {
				t.Fatalf("Grow: Len() = %d, expected %d", c.Len(), prev+1)
			}
		}
		c.Advance(c.Head().Add(d))
		if c.Len() < prev {
			t.Fatalf("length shrank from %d to %d", prev, c.Len())
		}
		prev = c.Len()
	}
}

func TestChainContains(t *testing.T) {
	c := NewChain(Position{X: 3, Y: 3}, 3)

	for _, p := range c.Positions() {
		if !c.Contains(p) {
			t.Errorf("Contains(%v) = false for an occupied cell", p)
		}
	}
	for _, p := range []Position{{3, 2}, {3, 6}, {4, 3}, {0, 0}} {
		if c.Contains(p) {
			t.Errorf("Contains(%v) = true for a free cell", p)
		}
	}
}

func TestChainPositionsIsCopy(t *testing.T) {
	c := NewChain(Position{X: 1, Y: 1}, 2)
	ps := c.Positions()
	ps[0] = Position{X: 99, Y: 99}

	if c.Head() != (Position{1, 1}) {
		t.Errorf("mutating Positions() result changed the chain: head = %v", c.Head())
	}
}
