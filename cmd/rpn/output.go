package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"rpn"
)

type printer struct {
	out, errOut io.Writer

	value *color.Color
	index *color.Color
	fail  *color.Color
	note  *color.Color
}

func newPrinter(out, errOut io.Writer, useColor bool) *printer {
	p := &printer{
		out:    out,
		errOut: errOut,
		value:  color.New(color.FgCyan),
		index:  color.New(color.Faint),
		fail:   color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgGreen),
	}
	if !useColor {
		for _, c := range []*color.Color{p.value, p.index, p.fail, p.note} {
			c.DisableColor()
		}
	}
	return p
}

func formatValue(v rpn.Value) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// stack prints the values top first, one per line.
func (p *printer) stack(c *rpn.Context, numbered bool) {
	vals := c.Stack().Values()
	for i := len(vals) - 1; i >= 0; i-- {
		if numbered {
			p.index.Fprintf(p.out, "%3d: ", len(vals)-1-i)
		}
		p.value.Fprintln(p.out, formatValue(vals[i]))
	}
}

func (p *printer) variables(c *rpn.Context) {
	for _, v := range c.Variables() {
		fmt.Fprintf(p.out, "%c%s = %s\n", rpn.VariableSigil, v.Name, p.value.Sprint(formatValue(v.Value)))
	}
}

func (p *printer) operators(c *rpn.Context) {
	fmt.Fprintln(p.out, strings.Join(c.Operators(), " "))
}

func (p *printer) operatorHelp(c *rpn.Context, name string) {
	op, ok := c.Operator(name)
	if !ok {
		p.failure(fmt.Errorf("no operator named %q", name))
		return
	}
	fmt.Fprintf(p.out, "%s  (arity %d)\n", p.note.Sprint(op.Name), op.Arity)
	if op.Help.In != "" || op.Help.Out != "" {
		fmt.Fprintf(p.out, "  %s -> %s\n", op.Help.In, op.Help.Out)
	}
	if op.Help.Action != "" {
		fmt.Fprintf(p.out, "  %s\n", op.Help.Action)
	}
}

func (p *printer) failure(err error) {
	var ee *rpn.EvalError
	if errors.As(err, &ee) {
		p.fail.Fprintf(p.errOut, "error: %s at token %d (%q)\n", ee.Kind, ee.Pos+1, ee.Token)
		return
	}
	p.fail.Fprintf(p.errOut, "error: %v\n", err)
}

func (p *printer) notice(format string, args ...any) {
	p.note.Fprintf(p.out, format+"\n", args...)
}

func (p *printer) trace(c *rpn.Context, tok string) {
	p.index.Fprintf(p.errOut, "  . %-12s depth=%d\n", tok, c.Stack().Size())
}
