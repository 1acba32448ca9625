package rpn

import (
	"math"
)

// MathLib supplies the transcendental functions behind the advanced math operators.
// Implementations need not validate their input: the operators check domains before
// calling and whatever comes back is pushed as is.
type MathLib interface {
	Sqrt(x float64) float64
	Log(x float64) float64
	Log10(x float64) float64
	Exp(x float64) float64
	Cos(x float64) float64
	Fmod(x, y float64) float64
	Pow(x, y float64) float64
}

// StdMath is the default MathLib, a thin shim over package math.
type StdMath struct{}

func (StdMath) Sqrt(x float64) float64    { return math.Sqrt(x) }
func (StdMath) Log(x float64) float64     { return math.Log(x) }
func (StdMath) Log10(x float64) float64   { return math.Log10(x) }
func (StdMath) Exp(x float64) float64     { return math.Exp(x) }
func (StdMath) Cos(x float64) float64     { return math.Cos(x) }
func (StdMath) Fmod(x, y float64) float64 { return math.Mod(x, y) }
func (StdMath) Pow(x, y float64) float64  { return math.Pow(x, y) }
