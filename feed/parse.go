// Package feed turns text of the form "<DIR> <COUNT>", one instruction per
// line, into rope instructions.
package feed

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/cespare/ropesim/rope"
)

type instructionLine struct {
	Dir   string `parser:"@Dir Space"`
	Count int    `parser:"@Int"`
}

var instructionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Dir", Pattern: `[UDLR]`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Space", Pattern: `[ \t]+`},
})

var lineParser = participle.MustBuild[instructionLine](
	participle.Lexer(instructionLexer),
)

// An InstructionError describes a line that could not be turned into an
// instruction. It matches rope.ErrInvalidInstruction under errors.Is.
type InstructionError struct {
	Source string // file name or other description of the input
	Line   int    // 1-based; 0 if not known
	Text   string
	Err    error
}

func (e *InstructionError) Error() string {
	var b strings.Builder
	if e.Source != "" {
		b.WriteString(e.Source)
		b.WriteString(":")
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, "%d:", e.Line)
	}
	if b.Len() > 0 {
		b.WriteString(" ")
	}
	fmt.Fprintf(&b, "bad instruction %q: %s", e.Text, e.Err)
	return b.String()
}

func (e *InstructionError) Unwrap() error { return e.Err }

func (e *InstructionError) Is(target error) bool {
	return target == rope.ErrInvalidInstruction
}

// ParseLine parses a single instruction such as "U 15".
// Leading and trailing whitespace is ignored.
func ParseLine(s string) (rope.Instruction, error) {
	var in rope.Instruction
	text := strings.TrimSpace(s)
	l, err := lineParser.ParseString("", text)
	if err != nil {
		return in, &InstructionError{Text: text, Err: err}
	}
	in.Dir, err = rope.ParseDirection(l.Dir)
	if err != nil {
		return in, &InstructionError{Text: text, Err: err}
	}
	in.Count = l.Count
	if err := in.Validate(); err != nil {
		return in, &InstructionError{Text: text, Err: err}
	}
	return in, nil
}

// A Scanner reads instructions from a stream, one per line. Blank lines are
// skipped. Scanning stops at the first malformed line.
type Scanner struct {
	name string
	sc   *bufio.Scanner
	line int
	in   rope.Instruction
	err  error
}

// NewScanner returns a Scanner reading from r; name is used in errors.
func NewScanner(r io.Reader, name string) *Scanner {
	return &Scanner{name: name, sc: bufio.NewScanner(r)}
}

func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.sc.Scan() {
		s.line++
		text := s.sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		in, err := ParseLine(text)
		if err != nil {
			ie := err.(*InstructionError)
			ie.Source = s.name
			ie.Line = s.line
			s.err = ie
			return false
		}
		s.in = in
		return true
	}
	if err := s.sc.Err(); err != nil {
		s.err = fmt.Errorf("error reading %s: %w", s.name, err)
	}
	return false
}

// Instruction returns the instruction read by the last successful Scan.
func (s *Scanner) Instruction() rope.Instruction { return s.in }

// Line is the number of lines consumed so far.
func (s *Scanner) Line() int { return s.line }

func (s *Scanner) Err() error { return s.err }

// ReadAll parses every instruction in r.
func ReadAll(r io.Reader, name string) ([]rope.Instruction, error) {
	var ins []rope.Instruction
	s := NewScanner(r, name)
	for s.Scan() {
		ins = append(ins, s.Instruction())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return ins, nil
}
