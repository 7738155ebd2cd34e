package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/cespare/ropesim/feed"
	"github.com/cespare/ropesim/render"
	"github.com/cespare/ropesim/rope"
)

func init() {
	register("repl", "move a rope interactively", repl)
}

func repl(args []string) error {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	var c commonFlags
	c.add(fs)
	fs.Parse(args)
	cfg, done, err := c.setup(fs)
	if err != nil {
		return err
	}
	defer done()

	knots := longest(cfg.Knots)
	s, err := newSession(os.Stdout, knots)
	if err != nil {
		return err
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: cfg.HistoryFile,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	fmt.Fprintf(os.Stdout, "%d-knot rope at the origin; type \"help\" for commands\n", knots)
	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			c.dump([]*rope.Simulator{s.sim})
			return nil
		default:
			log.Println("Readline error:", err)
			continue
		}
		if s.handle(line) {
			c.dump([]*rope.Simulator{s.sim})
			return nil
		}
	}
}

// A session is the state behind the repl prompt.
type session struct {
	w     io.Writer
	knots int
	sim   *rope.Simulator
}

func newSession(w io.Writer, knots int) (*session, error) {
	s := &session{w: w, knots: knots}
	return s, s.reset()
}

func (s *session) reset() error {
	sim, err := rope.New(s.knots, nil)
	if err != nil {
		return err
	}
	s.sim = sim
	return nil
}

const replHelp = `commands:
  <U|D|L|R> <count>  move the head
  show               draw the rope and visited cells
  reset              start over at the origin
  quit               exit
`

// handle executes one line of input and reports whether the session is
// over.
func (s *session) handle(line string) (quit bool) {
	switch strings.TrimSpace(line) {
	case "":
		return false
	case "quit", "exit":
		return true
	case "help":
		io.WriteString(s.w, replHelp)
		return false
	case "show":
		pic, err := render.Rope(s.sim, render.Options{ShowVisited: true})
		if err != nil {
			fmt.Fprintln(s.w, err)
			return false
		}
		io.WriteString(s.w, pic)
		return false
	case "reset":
		if err := s.reset(); err != nil {
			fmt.Fprintln(s.w, err)
		}
		return false
	}
	in, err := feed.ParseLine(line)
	if err != nil {
		fmt.Fprintln(s.w, err)
		return false
	}
	fresh := s.sim.Apply(in)
	fmt.Fprintf(s.w, "head %s, tail %s: %d new, %d visited\n",
		s.sim.Head(), s.sim.Tail(), len(fresh), s.sim.Visited().Len())
	return false
}
