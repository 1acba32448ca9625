package rpn

import (
	"math"
)

func buildRangeLib(c *Context) {

	c.builtin("constrain", 3, LibHelp{In: "value low high", Out: "value", Action: "Clamps value to [low,high]."}, func(c *Context) Result {
		high := c.stack.pop()
		low := c.stack.pop()
		v := c.stack.pop()
		switch {
		case v < low:
			v = low
		case v > high:
			v = high
		}
		c.stack.Push(v)
		return Continue()
	})

	c.builtin("map", 5, LibHelp{
		In:     "value from_low from_high to_low to_high",
		Out:    "value",
		Action: "Rescales value from one range to another, clamping it to the source range first. Fails when from_low equals from_high.",
	}, func(c *Context) Result {
		toHigh := c.stack.pop()
		toLow := c.stack.pop()
		fromHigh := c.stack.pop()
		fromLow := c.stack.pop()
		v := c.stack.pop()
		if fromHigh == fromLow {
			return Fail(InvalidArgument)
		}
		if v < fromLow {
			v = fromLow
		}
		if v > fromHigh {
			v = fromHigh
		}
		c.stack.Push(toLow + (v-fromLow)*(toHigh-toLow)/(fromHigh-fromLow))
		return Continue()
	})

	c.builtin("index", 1, LibHelp{
		In:     "index v0 .. vN-1 N",
		Out:    "v[index]",
		Action: "Selects one of N values by a zero based index.",
	}, opIndex)
}

// opIndex pops a count first, so its declared arity only covers that count.
func opIndex(c *Context) Result {
	n := int(c.stack.pop())
	if n <= 0 || n > c.maxIndex {
		return Fail(InvalidArgument)
	}
	if c.stack.Size() < n+1 {
		return Fail(ArgumentCountMismatch)
	}
	values := c.stack.popN(n)
	// the index is truncated toward zero before the bounds check
	idx := math.Trunc(float64(c.stack.pop()))
	if math.IsNaN(idx) || idx < 0 || idx >= float64(n) {
		return Fail(InvalidArgument)
	}
	c.stack.Push(values[int(idx)])
	return Continue()
}
