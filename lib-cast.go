package rpn

import (
	"math"
)

func buildCastLib(c *Context) {

	c.builtin("round", 2, LibHelp{In: "a decimals", Out: "a", Action: "Rounds a to the integer part of decimals (0-8) places, halves away from zero."}, func(c *Context) Result {
		d := int(c.stack.pop())
		a := c.stack.pop()
		if d < 0 || d > MaxRoundDecimals {
			return Fail(InvalidArgument)
		}
		scale := math.Pow10(d)
		c.stack.Push(Value(math.Round(float64(a)*scale) / scale))
		return Continue()
	})

	c.builtin("ceil", 1, LibHelp{In: "a", Out: "ceil(a)", Action: "Smallest integer not less than a."},
		unary(func(a Value) Value { return Value(math.Ceil(float64(a))) }))

	floor := unary(func(a Value) Value { return Value(math.Floor(float64(a))) })
	c.builtin("floor", 1, LibHelp{In: "a", Out: "floor(a)", Action: "Largest integer not greater than a."}, floor)
	c.builtin("int", 1, LibHelp{In: "a", Out: "floor(a)", Action: "Alias of floor."}, floor)
}
