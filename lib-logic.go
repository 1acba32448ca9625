package rpn

func buildLogicLib(c *Context) {

	c.builtin("==", 2, LibHelp{In: "a b", Out: "a==b", Action: "1 when equal, else 0."},
		binary(func(a, b Value) Value { return truth(a == b) }))
	c.builtin("!=", 2, LibHelp{In: "a b", Out: "a!=b", Action: "1 when different, else 0."},
		binary(func(a, b Value) Value { return truth(a != b) }))
	c.builtin(">", 2, LibHelp{In: "a b", Out: "a>b", Action: "1 when a is greater than b, else 0."},
		binary(func(a, b Value) Value { return truth(a > b) }))
	c.builtin(">=", 2, LibHelp{In: "a b", Out: "a>=b", Action: "1 when a is greater than or equal to b, else 0."},
		binary(func(a, b Value) Value { return truth(a >= b) }))
	c.builtin("<", 2, LibHelp{In: "a b", Out: "a<b", Action: "1 when a is less than b, else 0."},
		binary(func(a, b Value) Value { return truth(a < b) }))
	c.builtin("<=", 2, LibHelp{In: "a b", Out: "a<=b", Action: "1 when a is less than or equal to b, else 0."},
		binary(func(a, b Value) Value { return truth(a <= b) }))

	c.builtin("cmp", 2, LibHelp{In: "value threshold", Out: "-1|0|1", Action: "Compares value against threshold."},
		binary(func(v, t Value) Value {
			switch {
			case v < t:
				return -1
			case v > t:
				return 1
			}
			return 0
		}))

	c.builtin("cmp3", 3, LibHelp{In: "value low high", Out: "-1|0|1", Action: "-1 below low, 1 above high, 0 within the range."}, func(c *Context) Result {
		high := c.stack.pop()
		low := c.stack.pop()
		v := c.stack.pop()
		switch {
		case v < low:
			c.stack.Push(-1)
		case v > high:
			c.stack.Push(1)
		default:
			c.stack.Push(0)
		}
		return Continue()
	})

	// boolean, any non-zero value is true

	c.builtin("and", 2, LibHelp{In: "a b", Out: "a&&b", Action: "Logical and."},
		binary(func(a, b Value) Value { return truth(a != 0 && b != 0) }))
	c.builtin("or", 2, LibHelp{In: "a b", Out: "a||b", Action: "Logical or."},
		binary(func(a, b Value) Value { return truth(a != 0 || b != 0) }))
	c.builtin("xor", 2, LibHelp{In: "a b", Out: "a^^b", Action: "Logical exclusive or."},
		binary(func(a, b Value) Value { return truth((a != 0) != (b != 0)) }))
	c.builtin("not", 1, LibHelp{In: "a", Out: "!a", Action: "Logical not."},
		unary(func(a Value) Value { return truth(a == 0) }))
}
