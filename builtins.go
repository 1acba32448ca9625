package rpn

func (c *Context) loadBuiltins(advanced bool) {
	buildMathLib(c)
	if advanced {
		buildAdvancedMathLib(c)
	}
	buildLogicLib(c)
	buildRangeLib(c)
	buildStackLib(c)
	buildCastLib(c)
	buildControlLib(c)
}

// builtin names are unique, so no duplicate policy can refuse them
func (c *Context) builtin(name string, arity int, help LibHelp, fn OperatorFunc) {
	_ = c.ops.add(name, arity, fn, help)
}

func truth(b bool) Value {
	if b {
		return 1
	}
	return 0
}

// unary and binary wrap the common pop-compute-push shapes.

func unary(f func(a Value) Value) OperatorFunc {
	return func(c *Context) Result {
		a := c.stack.pop()
		c.stack.Push(f(a))
		return Continue()
	}
}

func binary(f func(a, b Value) Value) OperatorFunc {
	return func(c *Context) Result {
		b := c.stack.pop()
		a := c.stack.pop()
		c.stack.Push(f(a, b))
		return Continue()
	}
}
