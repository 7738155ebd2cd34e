package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cespare/wait"
	"github.com/felixge/fgprof"
	"github.com/kr/pretty"

	"github.com/cespare/ropesim/config"
	"github.com/cespare/ropesim/rope"
)

// commonFlags are accepted by every command.
type commonFlags struct {
	configPath string
	knots      string
	verbose    bool
	debug      bool
	fgprofPath string
}

func (c *commonFlags) add(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "INI config file")
	fs.StringVar(&c.knots, "knots", "", "comma-separated rope lengths (overrides config)")
	fs.BoolVar(&c.verbose, "v", false, "print resource usage when done")
	fs.BoolVar(&c.debug, "debug", false, "dump final knot positions")
	fs.StringVar(&c.fgprofPath, "fgprof", "", "write an fgprof profile to this file")
}

// setup loads the config and applies flag overrides. The returned function
// must be called when the command finishes.
func (c *commonFlags) setup(fs *flag.FlagSet) (*config.Config, func(), error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, nil, err
	}
	if c.knots != "" {
		cfg.Knots, err = config.ParseKnots(c.knots)
		if err != nil {
			return nil, nil, err
		}
	}
	if fs.NArg() > 1 {
		return nil, nil, fmt.Errorf("too many arguments: %q", fs.Args())
	}
	if fs.NArg() == 1 {
		cfg.Input = fs.Arg(0)
	}

	start := time.Now()
	stopProfile := func() error { return nil }
	if c.fgprofPath != "" {
		f, err := os.Create(c.fgprofPath)
		if err != nil {
			return nil, nil, err
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		stopProfile = func() error {
			if err := stop(); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		}
	}
	done := func() {
		if err := stopProfile(); err != nil {
			log.Println("Error writing profile:", err)
		}
		if c.verbose {
			log.Println(usageStats(time.Since(start)))
		}
	}
	return cfg, done, nil
}

func (c *commonFlags) dump(sims []*rope.Simulator) {
	if !c.debug {
		return
	}
	for _, sim := range sims {
		log.Printf("%d knots: %# v", sim.Len(), pretty.Formatter(sim.Knots()))
	}
}

// simulate runs a separate rope of each length over ins, concurrently.
func simulate(knots []int, ins []rope.Instruction) ([]*rope.Simulator, error) {
	sims := make([]*rope.Simulator, len(knots))
	for i, n := range knots {
		sim, err := rope.New(n, nil)
		if err != nil {
			return nil, err
		}
		sims[i] = sim
	}
	var wg wait.Group
	for _, sim := range sims {
		sim := sim
		wg.Go(func(<-chan struct{}) error {
			sim.Run(ins)
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return nil, err
	}
	return sims, nil
}

// longest returns the largest rope length in knots, which must not be
// empty. Interactive commands show a single rope, and the longest is the
// interesting one.
func longest(knots []int) int {
	n := knots[0]
	for _, k := range knots[1:] {
		n = max(n, k)
	}
	return n
}
