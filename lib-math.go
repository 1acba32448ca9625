package rpn

import (
	"math"
)

func buildMathLib(c *Context) {

	c.builtin("pi", 0, LibHelp{Out: "pi", Action: "Pushes the value of pi."}, func(c *Context) Result {
		c.stack.Push(constPi)
		return Continue()
	})
	c.builtin("e", 0, LibHelp{Out: "e", Action: "Pushes the value of e."}, func(c *Context) Result {
		c.stack.Push(constE)
		return Continue()
	})

	c.builtin("+", 2, LibHelp{In: "a b", Out: "a+b", Action: "Addition."},
		binary(func(a, b Value) Value { return a + b }))
	c.builtin("-", 2, LibHelp{In: "a b", Out: "a-b", Action: "Subtraction."},
		binary(func(a, b Value) Value { return a - b }))
	c.builtin("*", 2, LibHelp{In: "a b", Out: "a*b", Action: "Multiplication."},
		binary(func(a, b Value) Value { return a * b }))

	c.builtin("/", 2, LibHelp{In: "a b", Out: "a/b", Action: "Division. Fails when b is zero."}, func(c *Context) Result {
		b := c.stack.pop()
		a := c.stack.pop()
		if b == 0 {
			return Fail(DivideByZero)
		}
		c.stack.Push(a / b)
		return Continue()
	})

	c.builtin("mod", 2, LibHelp{In: "a b", Out: "a mod b", Action: "Remainder of the integer parts of a and b, signed like a."}, func(c *Context) Result {
		b := math.Trunc(float64(c.stack.pop()))
		a := math.Trunc(float64(c.stack.pop()))
		if b == 0 {
			return Fail(DivideByZero)
		}
		c.stack.Push(Value(math.Mod(a, b)))
		return Continue()
	})

	c.builtin("abs", 1, LibHelp{In: "a", Out: "|a|", Action: "Absolute value."},
		unary(func(a Value) Value { return Value(math.Abs(float64(a))) }))
}

// buildAdvancedMathLib wires the MathLib collaborator. Every domain check happens
// here since the collaborator performs none.
func buildAdvancedMathLib(c *Context) {

	m := c.math

	c.builtin("sqrt", 1, LibHelp{In: "a", Out: "sqrt(a)", Action: "Square root. Fails when a is negative."}, func(c *Context) Result {
		a := c.stack.pop()
		if a < 0 {
			return Fail(InvalidArgument)
		}
		c.stack.Push(Value(m.Sqrt(float64(a))))
		return Continue()
	})

	c.builtin("log", 1, LibHelp{In: "a", Out: "ln(a)", Action: "Natural logarithm. Fails when a <= 0."}, func(c *Context) Result {
		a := c.stack.pop()
		if a <= 0 {
			return Fail(InvalidArgument)
		}
		c.stack.Push(Value(m.Log(float64(a))))
		return Continue()
	})

	c.builtin("log10", 1, LibHelp{In: "a", Out: "log10(a)", Action: "Base 10 logarithm. Fails when a <= 0."}, func(c *Context) Result {
		a := c.stack.pop()
		if a <= 0 {
			return Fail(InvalidArgument)
		}
		c.stack.Push(Value(m.Log10(float64(a))))
		return Continue()
	})

	c.builtin("exp", 1, LibHelp{In: "a", Out: "e^a", Action: "Exponential."},
		unary(func(a Value) Value { return Value(m.Exp(float64(a))) }))

	c.builtin("fmod", 2, LibHelp{In: "a b", Out: "fmod(a,b)", Action: "Floating point remainder. Fails when b is zero."}, func(c *Context) Result {
		b := c.stack.pop()
		a := c.stack.pop()
		if b == 0 {
			return Fail(DivideByZero)
		}
		c.stack.Push(Value(m.Fmod(float64(a), float64(b))))
		return Continue()
	})

	c.builtin("pow", 2, LibHelp{In: "a b", Out: "a^b", Action: "Power."},
		binary(func(a, b Value) Value { return Value(m.Pow(float64(a), float64(b))) }))

	c.builtin("cos", 1, LibHelp{In: "a", Out: "cos(a)", Action: "Cosine, a in radians."},
		unary(func(a Value) Value { return Value(m.Cos(float64(a))) }))

	// sin and tan are derived from cos. The square root is never negative, so both
	// lose their sign for angles outside [0, pi].
	c.builtin("sin", 1, LibHelp{In: "a", Out: "|sin(a)|", Action: "Sine derived from cosine, sign is lost outside [0,pi]."},
		unary(func(a Value) Value { return Value(sinFromCos(m, float64(a))) }))

	c.builtin("tan", 1, LibHelp{In: "a", Out: "tan(a)", Action: "Tangent derived from cosine. Fails when cos(a) is zero."}, func(c *Context) Result {
		a := float64(c.stack.pop())
		cos := m.Cos(a)
		if cos == 0 {
			return Fail(InvalidArgument)
		}
		c.stack.Push(Value(sinFromCos(m, a) / cos))
		return Continue()
	})
}

func sinFromCos(m MathLib, a float64) float64 {
	cos := m.Cos(a)
	return m.Sqrt(1 - cos*cos)
}
