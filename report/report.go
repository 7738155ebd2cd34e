// Package report summarizes rope runs as Markdown.
package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/yuin/goldmark"

	"github.com/cespare/ropesim/render"
	"github.com/cespare/ropesim/rope"
)

// A Result is the outcome of running one rope over an instruction list.
type Result struct {
	Sim          *rope.Simulator
	Instructions int
}

type Options struct {
	Title string
	// Grid includes the visited-cell picture. Large inputs make large
	// pictures.
	Grid bool
}

// Write writes a Markdown report with one section per result.
func Write(w io.Writer, results []Result, opts Options) error {
	title := opts.Title
	if title == "" {
		title = "Rope simulation"
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", title)
	for _, r := range results {
		sim := r.Sim
		b := sim.Visited().Bounds()
		fmt.Fprintf(&buf, "## %d knots\n\n", sim.Len())
		fmt.Fprintf(&buf, "- Instructions: %s\n", humanize.Comma(int64(r.Instructions)))
		fmt.Fprintf(&buf, "- Unit steps: %s\n", humanize.Comma(int64(sim.Steps())))
		fmt.Fprintf(&buf, "- Cells visited by the tail: **%s**\n", humanize.Comma(int64(sim.Visited().Len())))
		fmt.Fprintf(&buf, "- Visited area: %d × %d\n", b.Rows(), b.Cols())
		fmt.Fprintf(&buf, "- Final head: %s, final tail: %s\n", sim.Head(), sim.Tail())
		if opts.Grid {
			grid, err := render.Visited(sim.Visited())
			if err != nil {
				return fmt.Errorf("%d knots: %w", sim.Len(), err)
			}
			fmt.Fprintf(&buf, "\n```\n%s```\n", grid)
		}
		buf.WriteString("\n")
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// HTML converts Markdown to HTML.
func HTML(w io.Writer, markdown []byte) error {
	return goldmark.Convert(markdown, w)
}
