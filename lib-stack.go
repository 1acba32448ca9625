package rpn

func buildStackLib(c *Context) {

	c.builtin("dup", 1, LibHelp{In: "a", Out: "a a", Action: "Duplicates the top value."}, func(c *Context) Result {
		a := c.stack.pop()
		c.stack.Push(a)
		c.stack.Push(a)
		return Continue()
	})

	c.builtin("dup2", 2, LibHelp{In: "a b", Out: "a b a b", Action: "Duplicates the top two values."}, func(c *Context) Result {
		b := c.stack.pop()
		a := c.stack.pop()
		c.stack.Push(a)
		c.stack.Push(b)
		c.stack.Push(a)
		c.stack.Push(b)
		return Continue()
	})

	c.builtin("swap", 2, LibHelp{In: "a b", Out: "b a", Action: "Swaps the top two values."}, func(c *Context) Result {
		b := c.stack.pop()
		a := c.stack.pop()
		c.stack.Push(b)
		c.stack.Push(a)
		return Continue()
	})

	c.builtin("rot", 3, LibHelp{In: "a b c", Out: "b c a", Action: "Moves the third value to the top."}, func(c *Context) Result {
		v := c.stack.popN(3)
		c.stack.Push(v[1])
		c.stack.Push(v[2])
		c.stack.Push(v[0])
		return Continue()
	})

	c.builtin("unrot", 3, LibHelp{In: "a b c", Out: "c a b", Action: "Moves the top value below the next two."}, func(c *Context) Result {
		v := c.stack.popN(3)
		c.stack.Push(v[2])
		c.stack.Push(v[0])
		c.stack.Push(v[1])
		return Continue()
	})

	c.builtin("over", 2, LibHelp{In: "a b", Out: "a b a", Action: "Copies the second value to the top."}, func(c *Context) Result {
		b := c.stack.pop()
		a := c.stack.pop()
		c.stack.Push(a)
		c.stack.Push(b)
		c.stack.Push(a)
		return Continue()
	})

	c.builtin("drop", 1, LibHelp{In: "a", Out: "", Action: "Discards the top value."}, func(c *Context) Result {
		c.stack.pop()
		return Continue()
	})

	c.builtin("depth", 0, LibHelp{Out: "n", Action: "Pushes the number of values on the stack."}, func(c *Context) Result {
		c.stack.Push(Value(c.stack.Size()))
		return Continue()
	})
}
