package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/cespare/ropesim/rope"
)

func TestPlayer(t *testing.T) {
	ins := []rope.Instruction{
		{Dir: rope.Right, Count: 2},
		{Dir: rope.Up, Count: 1},
	}
	p, err := newPlayer(2, ins)
	if err != nil {
		t.Fatal(err)
	}
	var steps int
	for p.step() {
		steps++
	}
	if steps != 3 {
		t.Errorf("took %d steps; want 3", steps)
	}
	if got, want := p.sim.Head(), (rope.Position{Row: 1, Col: 2}); got != want {
		t.Errorf("head = %s; want %s", got, want)
	}
	if !strings.HasPrefix(p.status(), "done") {
		t.Errorf("status = %q", p.status())
	}

	empty, err := newPlayer(2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if empty.step() {
		t.Error("empty player took a step")
	}
}

func TestDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(20, 6)

	p, err := newPlayer(3, []rope.Instruction{{Dir: rope.Right, Count: 3}})
	if err != nil {
		t.Fatal(err)
	}
	p.step()
	p.step()
	draw(screen, p)

	// The window has 5 rows and 20 columns centered on the head,
	// so the head is at x=10, y=2.
	for _, tt := range []struct {
		x, y int
		want rune
	}{
		{10, 2, 'H'},
		{9, 2, '1'},
		{8, 2, '2'},
		{10, 1, ' '},
		{0, 5, '1'}, // status line: "1/1 R 3 (1 left)..."
	} {
		r, _, _, _ := screen.GetContent(tt.x, tt.y)
		if r != tt.want {
			t.Errorf("(%d, %d): got %q; want %q", tt.x, tt.y, r, tt.want)
		}
	}
}

func TestPollEventsStopsOnQuit(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event) // never read
	quit := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		pollEvents(screen, events, quit)
		close(exited)
	}()
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	close(quit)
	select {
	case <-exited:
	case <-time.After(5 * time.Second):
		t.Fatal("pollEvents still blocked after quit was closed")
	}
}
