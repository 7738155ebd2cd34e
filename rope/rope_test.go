package rope

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/kr/pretty"
)

func parseAll(t *testing.T, pairs ...any) []Instruction {
	t.Helper()
	var ins []Instruction
	for i := 0; i < len(pairs); i += 2 {
		d, err := ParseDirection(pairs[i].(string))
		if err != nil {
			t.Fatal(err)
		}
		ins = append(ins, Instruction{Dir: d, Count: pairs[i+1].(int)})
	}
	return ins
}

func sample(t *testing.T) []Instruction {
	return parseAll(t, "R", 4, "U", 4, "L", 3, "D", 1, "R", 4, "D", 1, "L", 5, "R", 2)
}

func larger(t *testing.T) []Instruction {
	return parseAll(t, "R", 5, "U", 8, "L", 8, "D", 3, "R", 17, "D", 10, "L", 25, "U", 20)
}

func TestNewTooShort(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		if _, err := New(n, nil); !errors.Is(err, ErrRopeTooShort) {
			t.Errorf("New(%d): got err %v; want ErrRopeTooShort", n, err)
		}
	}
}

func TestNewSeedsOrigin(t *testing.T) {
	s, err := New(10, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := s.Run(nil), 1; got != want {
		t.Errorf("empty run: got %d; want %d", got, want)
	}
	if !s.Visited().Contains(Origin) {
		t.Error("origin not in visited set")
	}
}

func TestApplyTwoKnots(t *testing.T) {
	s, err := New(2, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, tt := range []struct {
		head, tail Position
		fresh      []Position
	}{
		{Position{0, 4}, Position{0, 3}, []Position{{0, 1}, {0, 2}, {0, 3}}},
		{Position{4, 4}, Position{3, 4}, []Position{{1, 4}, {2, 4}, {3, 4}}},
		{Position{4, 1}, Position{4, 2}, []Position{{4, 3}, {4, 2}}},
		{Position{3, 1}, Position{4, 2}, nil},
		{Position{3, 5}, Position{3, 4}, []Position{{3, 3}}},
		{Position{2, 5}, Position{3, 4}, nil},
		{Position{2, 0}, Position{2, 1}, []Position{{2, 3}, {2, 2}, {2, 1}}},
		{Position{2, 2}, Position{2, 1}, nil},
	} {
		in := sample(t)[i]
		fresh := s.Apply(in)
		if s.Head() != tt.head {
			t.Errorf("after %s: head = %s; want %s", in, s.Head(), tt.head)
		}
		if s.Tail() != tt.tail {
			t.Errorf("after %s: tail = %s; want %s", in, s.Tail(), tt.tail)
		}
		if diff := pretty.Diff(fresh, tt.fresh); len(diff) > 0 {
			t.Errorf("after %s: newly visited differs:\n%s", in, diff)
		}
	}
	if got, want := s.Visited().Len(), 13; got != want {
		t.Errorf("got %d visited; want %d", got, want)
	}
}

func TestRun(t *testing.T) {
	for _, tt := range []struct {
		name  string
		knots int
		ins   []Instruction
		want  int
	}{
		{"sample/2", 2, sample(t), 13},
		{"sample/10", 10, sample(t), 1},
		{"larger/10", 10, larger(t), 36},
	} {
		s, err := New(tt.knots, nil)
		if err != nil {
			t.Fatal(err)
		}
		if got := s.Run(tt.ins); got != tt.want {
			t.Errorf("%s: got %d; want %d", tt.name, got, tt.want)
		}
	}
}

func TestFollow(t *testing.T) {
	for _, tt := range []struct {
		lead  Position
		want  Position
		moved bool
	}{
		{Position{0, 0}, Position{0, 0}, false},
		{Position{1, 1}, Position{0, 0}, false},
		{Position{-1, 0}, Position{0, 0}, false},
		{Position{0, 2}, Position{0, 1}, true},
		{Position{0, -2}, Position{0, -1}, true},
		{Position{2, 0}, Position{1, 0}, true},
		{Position{-2, 0}, Position{-1, 0}, true},
		{Position{1, 2}, Position{1, 1}, true},
		{Position{1, -2}, Position{1, -1}, true},
		{Position{-1, -2}, Position{-1, -1}, true},
		{Position{-1, 2}, Position{-1, 1}, true},
		{Position{2, 1}, Position{1, 1}, true},
		{Position{2, -1}, Position{1, -1}, true},
		{Position{-2, -1}, Position{-1, -1}, true},
		{Position{-2, 1}, Position{-1, 1}, true},
		{Position{2, 2}, Position{1, 1}, true},
		{Position{-2, 2}, Position{-1, 1}, true},
	} {
		var k Position
		moved := follow(tt.lead, &k)
		if k != tt.want || moved != tt.moved {
			t.Errorf("follow(%s): got %s, %t; want %s, %t", tt.lead, k, moved, tt.want, tt.moved)
		}
	}
}

func randomInstructions(r *rand.Rand, n int) []Instruction {
	ins := make([]Instruction, n)
	for i := range ins {
		ins[i] = Instruction{
			Dir:   Direction(r.Intn(4)) + Up,
			Count: r.Intn(12) + 1,
		}
	}
	return ins
}

func TestInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for trial := 0; trial < 50; trial++ {
		knots := r.Intn(12) + 2
		s, err := New(knots, nil)
		if err != nil {
			t.Fatal(err)
		}
		prevVisited := s.Visited().Len()
		for _, in := range randomInstructions(r, 40) {
			for i := 0; i < in.Count; i++ {
				before := s.Knots()
				moved := s.Step(in.Dir)
				after := s.Knots()

				if got, want := after[0], before[0].Add(in.Dir.Offset()); got != want {
					t.Fatalf("head moved to %s; want %s", got, want)
				}
				for k := 1; k < knots; k++ {
					if d := after[k-1].Sub(after[k]).Chebyshev(); d > 1 {
						t.Fatalf("knots %d and %d are %d apart: %v", k-1, k, d, after)
					}
					if d := after[k].Sub(before[k]).Chebyshev(); d > 1 {
						t.Fatalf("knot %d jumped %d cells", k, d)
					}
					changed := after[k] != before[k]
					if changed != (k <= moved) {
						t.Fatalf("knot %d changed=%t but Step reported %d moved", k, changed, moved)
					}
				}
				n := s.Visited().Len()
				if n < prevVisited {
					t.Fatalf("visited shrank from %d to %d", prevVisited, n)
				}
				if n > s.Steps()+1 {
					t.Fatalf("%d visited after only %d steps", n, s.Steps())
				}
				prevVisited = n
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	ins := randomInstructions(rand.New(rand.NewSource(22)), 200)
	run := func() []Position {
		s, err := New(10, nil)
		if err != nil {
			t.Fatal(err)
		}
		s.Run(ins)
		return s.Visited().Positions()
	}
	first, second := run(), run()
	if diff := pretty.Diff(first, second); len(diff) > 0 {
		t.Errorf("runs differ:\n%s", diff)
	}
}

func TestSingleStep(t *testing.T) {
	s, err := New(10, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.Apply(Instruction{Dir: Left, Count: 1})
	if got, want := s.Head(), (Position{0, -1}); got != want {
		t.Errorf("head = %s; want %s", got, want)
	}
	if got := s.Steps(); got != 1 {
		t.Errorf("got %d steps; want 1", got)
	}
	for i, k := range s.Knots()[1:] {
		if k != Origin {
			t.Errorf("knot %d moved to %s", i+1, k)
		}
	}
}

func TestApplyInvalidPanics(t *testing.T) {
	for _, in := range []Instruction{
		{Dir: 0, Count: 1},
		{Dir: Right + 1, Count: 1},
		{Dir: Up, Count: 0},
		{Dir: Up, Count: -3},
	} {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrInvalidInstruction) {
					t.Errorf("Apply(%+v): got panic %v; want ErrInvalidInstruction", in, r)
				}
			}()
			s, err := New(2, nil)
			if err != nil {
				t.Fatal(err)
			}
			s.Apply(in)
		}()
	}
}

func TestSharedVisitedSet(t *testing.T) {
	visited := NewVisitedSet()
	a, err := New(2, visited)
	if err != nil {
		t.Fatal(err)
	}
	a.Run(sample(t))
	b, err := New(2, visited)
	if err != nil {
		t.Fatal(err)
	}
	if fresh := b.Apply(Instruction{Dir: Right, Count: 4}); len(fresh) != 0 {
		t.Errorf("second rope found new cells %v; want none", fresh)
	}
	if got, want := visited.Len(), 13; got != want {
		t.Errorf("got %d; want %d", got, want)
	}
}
