package rpn

func buildControlLib(c *Context) {

	c.builtin("ifn", 3, LibHelp{In: "cond then else", Out: "then|else", Action: "Pushes then when cond is non-zero, else otherwise."}, func(c *Context) Result {
		v := c.stack.popN(3)
		if v[0] != 0 {
			c.stack.Push(v[1])
		} else {
			c.stack.Push(v[2])
		}
		return Continue()
	})

	c.builtin("end", 1, LibHelp{In: "cond", Out: "", Action: "Stops evaluation successfully when cond is non-zero."}, func(c *Context) Result {
		if c.stack.pop() != 0 {
			return Halt()
		}
		return Continue()
	})
}
