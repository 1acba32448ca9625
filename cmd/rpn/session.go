package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"rpn"
)

// session is one rpn.Context plus the CLI state wrapped around it.
type session struct {
	ctx    *rpn.Context
	strict bool
	p      *printer
	failed bool
}

// eval runs one expression and prints either the stack or the failure.
func (s *session) eval(expr string, numbered bool) bool {
	if err := s.ctx.Evaluate(expr, s.strict); err != nil {
		s.failed = true
		s.p.failure(err)
		return false
	}
	s.p.stack(s.ctx, numbered)
	return true
}

// evalLines evaluates every line of r. Blank lines and # comments are skipped.
// The stack carries over from one line to the next.
func (s *session) evalLines(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.eval(line, false)
	}
	return sc.Err()
}

const replHelp = `expressions are evaluated against a stack kept between lines
  :stack              show the stack, top first
  :clear              empty the stack
  :vars               list variables
  :set name value     set a variable
  :del name           delete a variable
  :ops                list operators
  :help [operator]    this text, or help for one operator
  :strict on|off      fail on unknown $variables instead of pushing 0
  :quit               leave`

// command handles a :command line and reports whether the REPL should stop.
func (s *session) command(line string) (quit bool) {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), ":"))
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "q", "quit", "exit":
		return true
	case "h", "help":
		if len(fields) > 1 {
			s.p.operatorHelp(s.ctx, fields[1])
			return false
		}
		fmt.Fprintln(s.p.out, replHelp)
	case "stack":
		s.p.stack(s.ctx, true)
	case "clear":
		s.ctx.Stack().Clear()
	case "vars":
		s.p.variables(s.ctx)
	case "ops":
		s.p.operators(s.ctx)
	case "set":
		if len(fields) != 3 {
			s.p.failure(fmt.Errorf("usage: :set name value"))
			return false
		}
		v, err := strconv.ParseFloat(fields[2], 32)
		if err != nil {
			s.p.failure(fmt.Errorf("bad value %q", fields[2]))
			return false
		}
		s.ctx.SetVariable(strings.TrimPrefix(fields[1], string(rpn.VariableSigil)), rpn.Value(v))
	case "del":
		if len(fields) != 2 {
			s.p.failure(fmt.Errorf("usage: :del name"))
			return false
		}
		if !s.ctx.DeleteVariable(strings.TrimPrefix(fields[1], string(rpn.VariableSigil))) {
			s.p.failure(fmt.Errorf("no variable named %q", fields[1]))
		}
	case "strict":
		if len(fields) != 2 || (fields[1] != "on" && fields[1] != "off") {
			s.p.failure(fmt.Errorf("usage: :strict on|off"))
			return false
		}
		s.strict = fields[1] == "on"
		s.p.notice("strict variables %s", fields[1])
	default:
		s.p.failure(fmt.Errorf("unknown command :%s (try :help)", fields[0]))
	}
	return false
}
