// Command ropesim simulates a rope being dragged across a grid by its head
// and reports how many cells its tail visits.
//
// Instructions are read one per line, in the form "R 4", from stdin, a file,
// or an s3://bucket/key location.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd, ok := commands[os.Args[1]]
	if !ok {
		log.Fatalf("unknown command %q", os.Args[1])
	}
	if err := cmd.run(os.Args[2:]); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	var names []string
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintf(os.Stderr, "usage: %s [command] [flags] [input]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where command is one of:")
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", name, commands[name].summary)
	}
}

type command struct {
	summary string
	run     func(args []string) error
}

var commands = make(map[string]command)

func register(name, summary string, run func([]string) error) {
	if _, ok := commands[name]; ok {
		panic(fmt.Sprintf("duplicate commands registered for %q", name))
	}
	commands[name] = command{summary: summary, run: run}
}
