package rpn

import (
	"github.com/edwingeng/deque"
)

// Value is the only datum the language knows about.
type Value = float32

// Stack is the LIFO value store owned by a Context. The top of the stack is the
// most recently pushed value.
type Stack struct {
	d deque.Deque
}

func newStack() *Stack {
	return &Stack{d: deque.NewDeque()}
}

// Push appends v to the top of the stack.
func (s *Stack) Push(v Value) {
	s.d.PushBack(v)
}

// Pop removes and returns the top value.
func (s *Stack) Pop() (Value, error) {
	if s.d.Len() == 0 {
		return 0, ErrStackEmpty
	}
	return s.d.PopBack().(Value), nil
}

// Peek returns the value i positions below the top (0 is the top) without removing it.
func (s *Stack) Peek(i int) (Value, error) {
	n := s.d.Len()
	if i < 0 || i >= n {
		return 0, ErrOutOfRange
	}
	return s.d.Peek(n - 1 - i).(Value), nil
}

func (s *Stack) Size() int {
	return s.d.Len()
}

func (s *Stack) Clear() {
	s.d = deque.NewDeque()
}

// Values returns a copy of the stack contents, bottom first.
func (s *Stack) Values() []Value {
	n := s.d.Len()
	out := make([]Value, n)
	for i := 0; i < n; i++ {
		out[i] = s.d.Peek(i).(Value)
	}
	return out
}

// pop is used by operator callbacks once the driver has checked the declared arity.
func (s *Stack) pop() Value {
	return s.d.PopBack().(Value)
}

// popN removes n values and returns them in push order.
func (s *Stack) popN(n int) []Value {
	vals := make([]Value, n)
	for i := n - 1; i >= 0; i-- {
		vals[i] = s.pop()
	}
	return vals
}
