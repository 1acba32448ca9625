package rpn

import (
	"errors"
	"fmt"
)

// ErrorKind identifies why an evaluation stopped. The zero value, OK, means the last
// call completed (or halted explicitly) without error.
type ErrorKind uint8

const (
	OK ErrorKind = iota
	UnknownToken
	ArgumentCountMismatch
	DivideByZero
	InvalidArgument
)

var kindNames = [...]string{
	OK:                    "ok",
	UnknownToken:          "unknown token",
	ArgumentCountMismatch: "argument count mismatch",
	DivideByZero:          "divide by zero",
	InvalidArgument:       "invalid argument",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("error kind %d", uint8(k))
}

// Error lets a kind be used directly as a sentinel with errors.Is.
func (k ErrorKind) Error() string {
	return k.String()
}

// EvalError is returned by Evaluate when a token stops evaluation with an error.
type EvalError struct {
	Kind  ErrorKind
	Token string
	Pos   int // zero based token position within the input
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s at token %d (%q)", e.Kind, e.Pos+1, e.Token)
}

func (e *EvalError) Unwrap() error {
	return e.Kind
}

// usage errors
var (
	ErrStackEmpty        = errors.New("stack is empty")
	ErrOutOfRange        = errors.New("stack index out of range")
	ErrDuplicateOperator = errors.New("operator already registered")
	ErrBusy              = errors.New("context is already evaluating")
	ErrClosed            = errors.New("context is closed")
)

// Outcome is the control-flow decision an operator hands back to the driver.
type Outcome uint8

const (
	OutcomeContinue Outcome = iota
	OutcomeHalt
	OutcomeFail
)

// Result is the tagged value returned by every operator callback.
type Result struct {
	Outcome Outcome
	Kind    ErrorKind
}

// Continue lets evaluation proceed with the next token.
func Continue() Result { return Result{Outcome: OutcomeContinue} }

// Halt stops evaluation successfully.
func Halt() Result { return Result{Outcome: OutcomeHalt} }

// Fail stops evaluation and records kind as the context error.
func Fail(kind ErrorKind) Result { return Result{Outcome: OutcomeFail, Kind: kind} }
