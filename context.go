package rpn

import (
	"github.com/tevino/abool/v2"
)

// Context is the unit of evaluation: it owns the value stack, the operator table,
// the variable table and the outcome of the last Evaluate call.
//
// A Context must not be evaluated from two goroutines at once. Independent
// Contexts share nothing and may run in parallel.
type Context struct {
	stack *Stack
	ops   *Registry
	vars  *Variables

	math     MathLib
	maxIndex int
	hook     DebugFunc

	err       ErrorKind
	halted    bool
	lastToken string

	busy   *abool.AtomicBool
	closed *abool.AtomicBool
}

type config struct {
	builtins bool
	advanced bool
	math     MathLib
	policy   DuplicatePolicy
	maxIndex int
	hook     DebugFunc
}

// Option configures a Context at construction.
type Option func(*config)

// WithoutBuiltins starts with an empty operator table.
func WithoutBuiltins() Option {
	return func(cfg *config) { cfg.builtins = false }
}

// WithoutAdvancedMath leaves out sqrt, log, log10, exp, fmod, pow, cos, sin and tan.
func WithoutAdvancedMath() Option {
	return func(cfg *config) { cfg.advanced = false }
}

// WithMathLib replaces the functions used by the advanced math operators.
func WithMathLib(m MathLib) Option {
	return func(cfg *config) {
		if m != nil {
			cfg.math = m
		}
	}
}

// WithDuplicatePolicy sets how operator names registered twice are resolved.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(cfg *config) { cfg.policy = p }
}

// WithMaxIndex bounds the value count the index operator accepts.
func WithMaxIndex(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxIndex = n
		}
	}
}

// WithDebugHook installs a per context debug hook.
func WithDebugHook(fn DebugFunc) Option {
	return func(cfg *config) { cfg.hook = fn }
}

// New returns a Context with the builtin operators loaded.
func New(opts ...Option) *Context {
	cfg := config{
		builtins: true,
		advanced: true,
		math:     StdMath{},
		policy:   Shadow,
		maxIndex: DefaultMaxIndex,
	}
	for _, o := range opts {
		o(&cfg)
	}

	c := &Context{
		stack:    newStack(),
		ops:      newRegistry(cfg.policy),
		vars:     newVariables(),
		math:     cfg.math,
		maxIndex: cfg.maxIndex,
		hook:     cfg.hook,
		busy:     abool.New(),
		closed:   abool.New(),
	}
	if cfg.builtins {
		c.loadBuiltins(cfg.advanced)
	}
	return c
}

// Close releases the stack and both tables. Later evaluations fail with ErrClosed.
// Closing a context that is evaluating fails with ErrBusy; closing twice is a no-op.
func (c *Context) Close() error {
	if !c.busy.SetToIf(false, true) {
		if c.closed.IsSet() {
			return nil
		}
		return ErrBusy
	}
	// busy stays set, a closed context never evaluates again
	c.closed.Set()
	c.stack.Clear()
	c.ops.clear()
	c.vars.Clear()
	c.hook = nil
	return nil
}

// Stack gives direct access to the value stack.
func (c *Context) Stack() *Stack {
	return c.stack
}

// Err is the error kind recorded by the last Evaluate call.
func (c *Context) Err() ErrorKind {
	return c.err
}

// Halted reports whether the last Evaluate call stopped on an explicit halt.
func (c *Context) Halted() bool {
	return c.halted
}

// LastToken is the last token the last Evaluate call looked at.
func (c *Context) LastToken() string {
	return c.lastToken
}

// SetDebugHook installs fn as this context's hook. nil falls back to the process
// wide hook.
func (c *Context) SetDebugHook(fn DebugFunc) {
	c.hook = fn
}

//
// operators
//

// RegisterOperator appends an operator to the table. With the default Shadow
// policy a repeated name is accepted but never reached by lookups.
func (c *Context) RegisterOperator(name string, arity int, fn OperatorFunc) error {
	return c.ops.add(name, arity, fn, LibHelp{})
}

// Operator returns the entry a token named name would dispatch to.
func (c *Context) Operator(name string) (Operator, bool) {
	if op := c.ops.lookup(name); op != nil {
		return *op, true
	}
	return Operator{}, false
}

// Operators lists every registered name in registration order, duplicates included.
func (c *Context) Operators() []string {
	return c.ops.names()
}

func (c *Context) ClearOperators() {
	c.ops.clear()
}

//
// variables
//

func (c *Context) SetVariable(name string, v Value) {
	c.vars.Set(name, v)
}

func (c *Context) Variable(name string) (Value, bool) {
	return c.vars.Get(name)
}

// DeleteVariable removes name, reporting false when it was not set.
func (c *Context) DeleteVariable(name string) bool {
	return c.vars.Delete(name)
}

func (c *Context) ClearVariables() {
	c.vars.Clear()
}

func (c *Context) VariableCount() int {
	return c.vars.Len()
}

// VariableNames lists variable names in the order they were first set.
func (c *Context) VariableNames() []string {
	return c.vars.Names()
}

// Variables returns a copy of the variable table.
func (c *Context) Variables() []Variable {
	return c.vars.All()
}
