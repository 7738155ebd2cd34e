package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cespare/ropesim/render"
	"github.com/cespare/ropesim/rope"
)

func sampleResults(t *testing.T, knots ...int) []Result {
	t.Helper()
	ins := []rope.Instruction{
		{Dir: rope.Right, Count: 4},
		{Dir: rope.Up, Count: 4},
		{Dir: rope.Left, Count: 3},
		{Dir: rope.Down, Count: 1},
		{Dir: rope.Right, Count: 4},
		{Dir: rope.Down, Count: 1},
		{Dir: rope.Left, Count: 5},
		{Dir: rope.Right, Count: 2},
	}
	var results []Result
	for _, n := range knots {
		sim, err := rope.New(n, nil)
		if err != nil {
			t.Fatal(err)
		}
		sim.Run(ins)
		results = append(results, Result{Sim: sim, Instructions: len(ins)})
	}
	return results
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResults(t, 2, 10), Options{Grid: true}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{
		"# Rope simulation\n",
		"## 2 knots\n",
		"- Unit steps: 24\n",
		"- Cells visited by the tail: **13**\n",
		"- Final head: (2,2), final tail: (2,1)\n",
		"```\n..##.\n...##\n.####\n....#\ns###.\n```\n",
		"## 10 knots\n",
		"- Cells visited by the tail: **1**\n",
		"```\ns\n```\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestWriteCommas(t *testing.T) {
	sim, err := rope.New(2, nil)
	if err != nil {
		t.Fatal(err)
	}
	sim.Apply(rope.Instruction{Dir: rope.Up, Count: 1500})
	var buf bytes.Buffer
	if err := Write(&buf, []Result{{Sim: sim, Instructions: 1}}, Options{Title: "Long"}); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Long\n", "- Unit steps: 1,500\n", "**1,500**"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("report missing %q:\n%s", want, buf.String())
		}
	}
	if strings.Contains(buf.String(), "```") {
		t.Error("grid included without Options.Grid")
	}
}

func TestHTML(t *testing.T) {
	var md, html bytes.Buffer
	if err := Write(&md, sampleResults(t, 2), Options{}); err != nil {
		t.Fatal(err)
	}
	if err := HTML(&html, md.Bytes()); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"<h1>Rope simulation</h1>",
		"<h2>2 knots</h2>",
		"<strong>13</strong>",
	} {
		if !strings.Contains(html.String(), want) {
			t.Errorf("HTML missing %q:\n%s", want, html.String())
		}
	}
}

func TestWriteGridTooLarge(t *testing.T) {
	sim, err := rope.New(2, nil)
	if err != nil {
		t.Fatal(err)
	}
	sim.Run([]rope.Instruction{
		{Dir: rope.Right, Count: 5000},
		{Dir: rope.Up, Count: 5000},
	})
	results := []Result{{Sim: sim, Instructions: 2}}
	var buf bytes.Buffer
	if err := Write(&buf, results, Options{Grid: true}); !errors.Is(err, render.ErrTooLarge) {
		t.Errorf("got err %v; want render.ErrTooLarge", err)
	}
	if buf.Len() != 0 {
		t.Errorf("partial report written: %q", buf.String())
	}
	if err := Write(&buf, results, Options{}); err != nil {
		t.Errorf("report without grid: %s", err)
	}
}
