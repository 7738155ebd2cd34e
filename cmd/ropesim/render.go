package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/cespare/ropesim/feed"
	"github.com/cespare/ropesim/render"
)

func init() {
	register("render", "draw the cells visited by the tail", renderCmd)
}

func renderCmd(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var c commonFlags
	c.add(fs)
	withRope := fs.Bool("rope", false, "also draw the final knot positions")
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
	for i, sim := range sims {
		if i > 0 {
			fmt.Println()
		}
		var pic string
		if *withRope {
			pic, err = render.Rope(sim, render.Options{ShowVisited: true})
		} else {
			pic, err = render.Visited(sim.Visited())
		}
		if err != nil {
			return fmt.Errorf("%d knots: %w", sim.Len(), err)
		}
		fmt.Printf("== %d knots ==\n", sim.Len())
		fmt.Print(pic)
	}
	c.dump(sims)
	return nil
}
