package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/cespare/ropesim/feed"
	"github.com/cespare/ropesim/render"
	"github.com/cespare/ropesim/rope"
)

func init() {
	register("watch", "animate the rope in the terminal", watch)
}

func watch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	var c commonFlags
	c.add(fs)
	delay := fs.Duration("delay", 0, "time between unit steps (overrides config)")
	fs.Parse(args)
	cfg, done, err := c.setup(fs)
	if err != nil {
		return err
	}
	defer done()
	if *delay > 0 {
		cfg.WatchDelay = *delay
	}
	if cfg.WatchDelay <= 0 {
		cfg.WatchDelay = time.Millisecond
	}

	ins, err := feed.ReadLocation(context.Background(), cfg.Input, cfg)
	if err != nil {
		return err
	}
	p, err := newPlayer(longest(cfg.Knots), ins)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go pollEvents(screen, events, quit)

	ticker := time.NewTicker(cfg.WatchDelay)
	defer ticker.Stop()
	draw(screen, p)
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					c.dump([]*rope.Simulator{p.sim})
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			p.step()
		}
		draw(screen, p)
	}
}

// pollEvents forwards screen events until the screen is finalized or quit
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// A player feeds instructions to a simulator one unit step at a time.
type player struct {
	sim  *rope.Simulator
	ins  []rope.Instruction
	next int // index into ins
	left int // steps left in ins[next]
}

func newPlayer(knots int, ins []rope.Instruction) (*player, error) {
	sim, err := rope.New(knots, nil)
	if err != nil {
		return nil, err
	}
	p := &player{sim: sim, ins: ins}
	if len(ins) > 0 {
		p.left = ins[0].Count
	}
	return p, nil
}

func (p *player) finished() bool {
	return p.next >= len(p.ins)
}

// step advances one unit step and reports whether there was one to take.
func (p *player) step() bool {
	if p.finished() {
		return false
	}
	p.sim.Step(p.ins[p.next].Dir)
	p.left--
	if p.left == 0 {
		p.next++
		if !p.finished() {
			p.left = p.ins[p.next].Count
		}
	}
	return true
}

func (p *player) status() string {
	state := "done"
	if !p.finished() {
		in := p.ins[p.next]
		state = fmt.Sprintf("%d/%d %s (%d left)", p.next+1, len(p.ins), in, p.left)
	}
	return fmt.Sprintf("%s | visited %d | q to quit", state, p.sim.Visited().Len())
}

var (
	headStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	knotStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	visitedStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	startStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	statusStyle  = tcell.StyleDefault.Reverse(true)
)

// draw renders the rope centered on its head, with a status line at the
// bottom of the screen.
func draw(screen tcell.Screen, p *player) {
	screen.Clear()
	width, height := screen.Size()
	if width < 1 || height < 2 {
		screen.Show()
		return
	}
	b := render.Window(p.sim.Head(), height-1, width)
	canvas, err := render.NewCanvas(b)
	if err != nil {
		// Only a terminal bigger than MaxCells gets here.
		screen.Show()
		return
	}
	canvas.DrawVisited(p.sim.Visited())
	canvas.Set(rope.Origin, render.Start)
	canvas.DrawKnots(p.sim.Knots())
	for y := 0; y < height-1; y++ {
		for x := 0; x < width; x++ {
			pos := rope.Position{Row: b.Max.Row - y, Col: b.Min.Col + x}
			r := canvas.At(pos)
			var style tcell.Style
			switch r {
			case render.Empty:
				continue
			case render.HeadSym:
				style = headStyle
			case render.Mark:
				style = visitedStyle
			case render.Start:
				style = startStyle
			default:
				style = knotStyle
			}
			screen.SetContent(x, y, r, nil, style)
		}
	}
	for x, r := range []rune(p.status()) {
		if x >= width {
			break
		}
		screen.SetContent(x, height-1, r, nil, statusStyle)
	}
	screen.Show()
}
