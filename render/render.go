// Package render draws ropes and visited cells as text, with the highest
// row at the top.
package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/ropesim/rope"
)

const (
	Empty   = '.'
	Mark    = '#'
	Start   = 's'
	HeadSym = 'H'
)

// KnotRune is the symbol for knot i: H for the head, then 1-9, then a-z.
// Knots past z all share '+'.
func KnotRune(i int) rune {
	switch {
	case i == 0:
		return HeadSym
	case i < 36:
		return rune(strconv.FormatInt(int64(i), 36)[0])
	}
	return '+'
}

// MaxCells caps the area of a canvas. The bounding box of a long walk grows
// with the square of its length, so large inputs are refused rather than
// drawn.
const MaxCells = 1 << 22

var ErrTooLarge = errors.New("picture too large")

// A Canvas is a fixed window onto the lattice.
type Canvas struct {
	bounds rope.Bounds
	cells  [][]rune // cells[0] is the bottom row
}

// NewCanvas returns a blank canvas covering b. It fails if b is inverted or
// covers more than MaxCells cells.
func NewCanvas(b rope.Bounds) (*Canvas, error) {
	rows, cols := int64(b.Rows()), int64(b.Cols())
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("render: inverted bounds %s..%s", b.Min, b.Max)
	}
	if rows*cols > MaxCells {
		return nil, fmt.Errorf("%w: %d×%d cells (limit %d)", ErrTooLarge, rows, cols, MaxCells)
	}
	c := &Canvas{bounds: b, cells: make([][]rune, rows)}
	for i := range c.cells {
		row := make([]rune, b.Cols())
		for j := range row {
			row[j] = Empty
		}
		c.cells[i] = row
	}
	return c, nil
}

func (c *Canvas) Bounds() rope.Bounds { return c.bounds }

// Set draws r at p. Positions outside the canvas are ignored.
func (c *Canvas) Set(p rope.Position, r rune) {
	if !c.bounds.Contains(p) {
		return
	}
	c.cells[p.Row-c.bounds.Min.Row][p.Col-c.bounds.Min.Col] = r
}

func (c *Canvas) At(p rope.Position) rune {
	if !c.bounds.Contains(p) {
		return 0
	}
	return c.cells[p.Row-c.bounds.Min.Row][p.Col-c.bounds.Min.Col]
}

// DrawVisited marks every member of s.
func (c *Canvas) DrawVisited(s *rope.VisitedSet) {
	for _, p := range s.Positions() {
		c.Set(p, Mark)
	}
}

// DrawKnots draws knots so that a lower index covers a higher one.
func (c *Canvas) DrawKnots(knots []rope.Position) {
	for i := len(knots) - 1; i >= 0; i-- {
		c.Set(knots[i], KnotRune(i))
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i := len(c.cells) - 1; i >= 0; i-- {
		b.WriteString(string(c.cells[i]))
		b.WriteByte('\n')
	}
	return b.String()
}

// Visited renders the cells in s over its own bounds, with the origin
// shown as s.
func Visited(s *rope.VisitedSet) (string, error) {
	c, err := NewCanvas(s.Bounds().ExpandTo(rope.Origin))
	if err != nil {
		return "", err
	}
	c.DrawVisited(s)
	c.Set(rope.Origin, Start)
	return c.String(), nil
}

type Options struct {
	// ShowVisited marks the cells the tail has visited.
	ShowVisited bool
	// Bounds fixes the window. If nil, the window fits the knots, the
	// origin and (with ShowVisited) the visited cells.
	Bounds *rope.Bounds
}

// Rope renders the knots of sim. Knots cover the start marker, which
// covers visited marks.
func Rope(sim *rope.Simulator, opts Options) (string, error) {
	knots := sim.Knots()
	var b rope.Bounds
	if opts.Bounds != nil {
		b = *opts.Bounds
	} else {
		b = rope.Bounds{Min: rope.Origin, Max: rope.Origin}
		for _, k := range knots {
			b = b.ExpandTo(k)
		}
		if opts.ShowVisited && sim.Visited().Len() > 0 {
			v := sim.Visited().Bounds()
			b = b.ExpandTo(v.Min).ExpandTo(v.Max)
		}
	}
	c, err := NewCanvas(b)
	if err != nil {
		return "", err
	}
	if opts.ShowVisited {
		c.DrawVisited(sim.Visited())
	}
	c.Set(rope.Origin, Start)
	c.DrawKnots(knots)
	return c.String(), nil
}

// Window returns bounds of the given size centered on p.
func Window(p rope.Position, rows, cols int) rope.Bounds {
	lo := rope.Position{Row: p.Row - rows/2, Col: p.Col - cols/2}
	return rope.Bounds{
		Min: lo,
		Max: rope.Position{Row: lo.Row + rows - 1, Col: lo.Col + cols - 1},
	}
}
