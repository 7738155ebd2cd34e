package rope

import "fmt"

// Position is a cell on the unbounded integer lattice. Rows grow upward.
type Position struct {
	Row, Col int
}

// Origin is where every knot starts.
var Origin = Position{}

func (p Position) Add(q Position) Position {
	return Position{p.Row + q.Row, p.Col + q.Col}
}

func (p Position) Sub(q Position) Position {
	return Position{p.Row - q.Row, p.Col - q.Col}
}

// Chebyshev returns max(|Row|, |Col|), the distance of p from the origin
// when diagonal moves cost the same as orthogonal ones.
func (p Position) Chebyshev() int {
	return max(abs(p.Row), abs(p.Col))
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func less(p, q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
