package rpn

import (
	"strconv"

	"fortio.org/log"
)

// Evaluate runs input against the context. Tokens are handled left to right:
// numeric literals are pushed, operator names dispatched, $name tokens resolved
// from the variable table. The first failing token stops evaluation and its kind
// is returned as an *EvalError (also readable through Err). Values pushed by
// earlier tokens stay on the stack.
//
// A $name that is not set pushes 0 unless variableMustExist is true, in which case
// it fails with UnknownToken.
//
// An explicit halt returns nil and sets Halted.
func (c *Context) Evaluate(input string, variableMustExist bool) error {
	if c.closed.IsSet() {
		return ErrClosed
	}
	if !c.busy.SetToIf(false, true) {
		return ErrBusy
	}
	defer c.busy.UnSet()

	c.err = OK
	c.halted = false
	c.lastToken = ""

	for pos, tok := range Tokenize(input) {
		c.lastToken = tok
		if hook := c.debugHook(); hook != nil {
			hook(c, tok)
		}
		log.LogVf("rpn: [%d] %q depth=%d", pos, tok, c.stack.Size())

		res := c.step(tok, variableMustExist)
		switch res.Outcome {
		case OutcomeContinue:
			continue
		case OutcomeHalt:
			c.halted = true
			log.Debugf("rpn: halted by %q at token %d", tok, pos+1)
			return nil
		}

		kind := res.Kind
		if kind == OK {
			// a failing callback that forgot to name the failure
			kind = InvalidArgument
		}
		c.err = kind
		log.Debugf("rpn: %s at token %d (%q)", kind, pos+1, tok)
		return &EvalError{Kind: kind, Token: tok, Pos: pos}
	}
	return nil
}

func (c *Context) step(tok string, variableMustExist bool) Result {

	if IsNumber(tok) {
		// out of range literals come back as +/-Inf, which is what gets pushed
		v, _ := strconv.ParseFloat(tok, 32)
		c.stack.Push(Value(v))
		return Continue()
	}

	if op := c.ops.lookup(tok); op != nil {
		if c.stack.Size() < op.Arity {
			return Fail(ArgumentCountMismatch)
		}
		return op.Fn(c)
	}

	if name, ok := isVariable(tok); ok {
		if v, found := c.vars.Get(name); found {
			c.stack.Push(v)
			return Continue()
		}
		if !variableMustExist {
			c.stack.Push(0)
			return Continue()
		}
	}

	return Fail(UnknownToken)
}
