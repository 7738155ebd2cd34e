package rope

import (
	"errors"
	"fmt"
)

// ErrInvalidInstruction is the class of every malformed instruction, whether
// it is caught by a parser or by Validate.
var ErrInvalidInstruction = errors.New("invalid instruction")

type Direction uint8

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

var directionOffsets = [...]Position{
	Up:    {1, 0},
	Down:  {-1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

var directionNames = [...]string{
	Up:    "U",
	Down:  "D",
	Left:  "L",
	Right: "R",
}

// ParseDirection maps the one-letter tokens U, D, L and R to a Direction.
func ParseDirection(s string) (Direction, error) {
	for d := Up; d <= Right; d++ {
		if directionNames[d] == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidInstruction, s)
}

func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Offset is the unit move of the head for one step in direction d.
func (d Direction) Offset() Position {
	if !d.Valid() {
		panic(fmt.Sprintf("rope: invalid direction %d", d))
	}
	return directionOffsets[d]
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", d)
	}
	return directionNames[d]
}

// An Instruction moves the head Count unit steps in direction Dir.
type Instruction struct {
	Dir   Direction
	Count int
}

func (in Instruction) Validate() error {
	if !in.Dir.Valid() {
		return fmt.Errorf("%w: unknown direction %s", ErrInvalidInstruction, in.Dir)
	}
	if in.Count < 1 {
		return fmt.Errorf("%w: count must be positive, got %d", ErrInvalidInstruction, in.Count)
	}
	return nil
}

func (in Instruction) String() string {
	return fmt.Sprintf("%s %d", in.Dir, in.Count)
}
