package rpn

//
// CONSTANTS
//

// VariableSigil marks a token as a variable reference, e.g. $temp.
const VariableSigil = '$'

const (
	DefaultMaxIndex  = 255 // largest value count accepted by the index operator
	MaxRoundDecimals = 8   // float32 carries no more useful decimals than this
)

const (
	opsInitialSize  = 64 // builtin set fits without regrowing
	varsInitialSize = 8
)

const (
	constPi = float32(3.14159265358979323846264338327950288419716939937510582097494459)
	constE  = float32(2.71828182845904523536028747135266249775724709369995957496696763)
)
