package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cespare/ropesim/feed"
	"github.com/cespare/ropesim/rope"
)

func init() {
	register("count", "print the number of cells visited by the tail", count)
}

func count(args []string) error {
	fs := flag.NewFlagSet("count", flag.ExitOnError)
	var c commonFlags
	c.add(fs)
	fs.Parse(args)
	cfg, done, err := c.setup(fs)
	if err != nil {
		return err
	}
	defer done()

	ins, err := feed.ReadLocation(context.Background(), cfg.Input, cfg)
	if err != nil {
		return err
	}
	sims, err := simulate(cfg.Knots, ins)
	if err != nil {
		return err
	}
	printCounts(os.Stdout, sims)
	c.dump(sims)
	return nil
}

func printCounts(w io.Writer, sims []*rope.Simulator) {
	for _, sim := range sims {
		fmt.Fprintf(w, "%d knots: %d\n", sim.Len(), sim.Visited().Len())
	}
}
