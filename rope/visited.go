package rope

import "sort"

// A VisitedSet records the distinct positions occupied by a tail knot.
// The zero value is not usable; call NewVisitedSet.
type VisitedSet struct {
	m      map[Position]struct{}
	bounds Bounds
}

// Bounds is the smallest box, inclusive on both ends, containing a set of
// positions.
type Bounds struct {
	Min, Max Position
}

func (b Bounds) Rows() int { return b.Max.Row - b.Min.Row + 1 }
func (b Bounds) Cols() int { return b.Max.Col - b.Min.Col + 1 }

func (b Bounds) Contains(p Position) bool {
	return p.Row >= b.Min.Row && p.Row <= b.Max.Row &&
		p.Col >= b.Min.Col && p.Col <= b.Max.Col
}

// ExpandTo returns b grown to include p.
func (b Bounds) ExpandTo(p Position) Bounds {
	b.Min.Row = min(b.Min.Row, p.Row)
	b.Min.Col = min(b.Min.Col, p.Col)
	b.Max.Row = max(b.Max.Row, p.Row)
	b.Max.Col = max(b.Max.Col, p.Col)
	return b
}

func NewVisitedSet() *VisitedSet {
	return &VisitedSet{m: make(map[Position]struct{})}
}

// Add inserts p and reports whether it was not already present.
func (s *VisitedSet) Add(p Position) bool {
	if _, ok := s.m[p]; ok {
		return false
	}
	if len(s.m) == 0 {
		s.bounds = Bounds{p, p}
	} else {
		s.bounds = s.bounds.ExpandTo(p)
	}
	s.m[p] = struct{}{}
	return true
}

func (s *VisitedSet) Contains(p Position) bool {
	_, ok := s.m[p]
	return ok
}

func (s *VisitedSet) Len() int {
	return len(s.m)
}

// Bounds returns the bounding box of the set. It is the zero Bounds if the
// set is empty.
func (s *VisitedSet) Bounds() Bounds {
	return s.bounds
}

// Positions returns the members ordered by row, then column.
func (s *VisitedSet) Positions() []Position {
	ps := make([]Position, 0, len(s.m))
	for p := range s.m {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool { return less(ps[i], ps[j]) })
	return ps
}
