package rpn

import (
	"errors"
	"reflect"
	"testing"
)

func TestStackPushPop(t *testing.T) {
	s := newStack()
	if _, err := s.Pop(); !errors.Is(err, ErrStackEmpty) {
		t.Fatalf("Pop on empty stack: got %v, want ErrStackEmpty", err)
	}

	s.Push(1)
	s.Push(2)
	s.Push(3)
	if s.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", s.Size())
	}

	v, err := s.Pop()
	if err != nil || v != 3 {
		t.Fatalf("Pop() = (%v,%v), want (3,nil)", v, err)
	}
	if s.Size() != 2 {
		t.Fatalf("Size() = %d after pop, want 2", s.Size())
	}
}

func TestStackPeek(t *testing.T) {
	s := newStack()
	for _, v := range []Value{10, 20, 30} {
		s.Push(v)
	}

	for i, want := range []Value{30, 20, 10} {
		got, err := s.Peek(i)
		if err != nil || got != want {
			t.Fatalf("Peek(%d) = (%v,%v), want (%v,nil)", i, got, err, want)
		}
	}
	for _, i := range []int{-1, 3, 100} {
		if _, err := s.Peek(i); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Peek(%d): got %v, want ErrOutOfRange", i, err)
		}
	}
	if s.Size() != 3 {
		t.Fatalf("Peek changed the stack size to %d", s.Size())
	}
}

func TestStackValuesAndClear(t *testing.T) {
	s := newStack()
	s.Push(1)
	s.Push(2)
	if got := s.Values(); !reflect.DeepEqual(got, []Value{1, 2}) {
		t.Fatalf("Values() = %v, want [1 2]", got)
	}

	s.Clear()
	if s.Size() != 0 {
		t.Fatalf("Size() = %d after Clear, want 0", s.Size())
	}
	s.Push(5)
	if v, _ := s.Peek(0); v != 5 {
		t.Fatalf("stack not usable after Clear, top = %v", v)
	}
}

func TestStackPopN(t *testing.T) {
	s := newStack()
	for _, v := range []Value{1, 2, 3, 4} {
		s.Push(v)
	}
	if got := s.popN(3); !reflect.DeepEqual(got, []Value{2, 3, 4}) {
		t.Fatalf("popN(3) = %v, want [2 3 4]", got)
	}
	if s.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", s.Size())
	}
}
