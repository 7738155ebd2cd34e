// Package rope simulates a chain of knots on an integer lattice. The head
// knot is moved one cell at a time; every other knot follows the knot in
// front of it so that neighbors always touch (diagonally included).
package rope

import (
	"errors"
	"fmt"
)

var ErrRopeTooShort = errors.New("rope needs at least 2 knots")

// A Simulator owns the knots of one rope and the set of cells its tail has
// occupied. It is not safe for concurrent use.
type Simulator struct {
	knots   []Position
	visited *VisitedSet
	steps   int
}

// New returns a simulator for a rope of n knots, all at the origin. The
// origin is added to visited, which is allocated if nil.
func New(n int, visited *VisitedSet) (*Simulator, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrRopeTooShort, n)
	}
	if visited == nil {
		visited = NewVisitedSet()
	}
	visited.Add(Origin)
	return &Simulator{
		knots:   make([]Position, n),
		visited: visited,
	}, nil
}

// Step moves the head one cell in direction d, drags the rest of the rope
// along, and records where the tail ends up. It returns the number of knots
// behind the head that moved.
func (s *Simulator) Step(d Direction) int {
	s.knots[0] = s.knots[0].Add(d.Offset())
	moved := 0
	for i := 1; i < len(s.knots); i++ {
		if !follow(s.knots[i-1], &s.knots[i]) {
			// A knot that stays put can't pull anything behind it.
			break
		}
		moved++
	}
	s.steps++
	s.visited.Add(s.Tail())
	return moved
}

// follow moves k one unit toward lead on each axis where they differ,
// unless they already touch.
func follow(lead Position, k *Position) bool {
	diff := lead.Sub(*k)
	if diff.Chebyshev() <= 1 {
		return false
	}
	k.Row += sign(diff.Row)
	k.Col += sign(diff.Col)
	return true
}

// Apply executes in one unit step at a time and returns the tail positions
// that were visited for the first time, in the order they were reached.
// It panics if in is not valid.
func (s *Simulator) Apply(in Instruction) []Position {
	if err := in.Validate(); err != nil {
		panic(err)
	}
	var fresh []Position
	for i := 0; i < in.Count; i++ {
		before := s.visited.Len()
		s.Step(in.Dir)
		if s.visited.Len() > before {
			fresh = append(fresh, s.Tail())
		}
	}
	return fresh
}

// Run applies every instruction in order and returns the number of distinct
// positions the tail has visited.
func (s *Simulator) Run(ins []Instruction) int {
	for _, in := range ins {
		s.Apply(in)
	}
	return s.visited.Len()
}

// Len is the number of knots.
func (s *Simulator) Len() int { return len(s.knots) }

func (s *Simulator) Head() Position { return s.knots[0] }
func (s *Simulator) Tail() Position { return s.knots[len(s.knots)-1] }

// Knots returns a copy of the knot positions, head first.
func (s *Simulator) Knots() []Position {
	return append([]Position(nil), s.knots...)
}

func (s *Simulator) Visited() *VisitedSet { return s.visited }

// Steps is the number of unit steps executed so far.
func (s *Simulator) Steps() int { return s.steps }
