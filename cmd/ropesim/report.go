package main

import (
	"bytes"
	"context"
	"flag"
	"os"

	"github.com/cespare/ropesim/feed"
	"github.com/cespare/ropesim/report"
)

func init() {
	register("report", "write a Markdown (or HTML) summary", reportCmd)
}

func reportCmd(args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	var c commonFlags
	c.add(fs)
	html := fs.Bool("html", false, "write HTML instead of Markdown")
	grid := fs.Bool("grid", false, "include a picture of the visited cells")
	title := fs.String("title", "", "report title")
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
	results := make([]report.Result, len(sims))
	for i, sim := range sims {
		results[i] = report.Result{Sim: sim, Instructions: len(ins)}
	}
	var md bytes.Buffer
	if err := report.Write(&md, results, report.Options{Title: *title, Grid: *grid}); err != nil {
		return err
	}
	c.dump(sims)
	if *html {
		return report.HTML(os.Stdout, md.Bytes())
	}
	_, err = md.WriteTo(os.Stdout)
	return err
}
