package rpn

import (
	"errors"
	"testing"

	"github.com/segmentio/fasthash/fnv1a"
)

func constOp(v Value) OperatorFunc {
	return func(c *Context) Result {
		c.Stack().Push(v)
		return Continue()
	}
}

func TestDuplicateShadowKeepsFirst(t *testing.T) {
	c := New()
	before := len(c.Operators())
	if err := c.RegisterOperator("+", 2, constOp(99)); err != nil {
		t.Fatalf("shadowing registration failed: %v", err)
	}
	if len(c.Operators()) != before+1 {
		t.Fatalf("duplicate was not appended")
	}

	if err := c.Evaluate("1 2 +", false); err != nil {
		t.Fatal(err)
	}
	if v, _ := c.Stack().Pop(); v != 3 {
		t.Fatalf("1 2 + = %v, the builtin should still win", v)
	}
}

func TestDuplicateOverrideKeepsLast(t *testing.T) {
	c := New(WithDuplicatePolicy(Override))
	c.RegisterOperator("answer", 0, constOp(1))
	c.RegisterOperator("answer", 0, constOp(42))
	if err := c.Evaluate("answer", false); err != nil {
		t.Fatal(err)
	}
	if v, _ := c.Stack().Pop(); v != 42 {
		t.Fatalf("answer = %v, want the latest registration (42)", v)
	}

	c.RegisterOperator("+", 2, func(c *Context) Result {
		c.Stack().Pop()
		c.Stack().Pop()
		c.Stack().Push(-1)
		return Continue()
	})
	if err := c.Evaluate("1 2 +", false); err != nil {
		t.Fatal(err)
	}
	if v, _ := c.Stack().Pop(); v != -1 {
		t.Fatalf("1 2 + = %v, want the overriding operator", v)
	}
}

func TestDuplicateReject(t *testing.T) {
	c := New(WithDuplicatePolicy(Reject))
	before := len(c.Operators())
	err := c.RegisterOperator("dup", 1, constOp(0))
	if !errors.Is(err, ErrDuplicateOperator) {
		t.Fatalf("RegisterOperator(dup) = %v, want ErrDuplicateOperator", err)
	}
	if len(c.Operators()) != before {
		t.Fatalf("rejected operator was added")
	}
	if err := c.RegisterOperator("cube", 1, constOp(0)); err != nil {
		t.Fatalf("fresh name refused: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	c := New(WithoutBuiltins())
	if err := c.RegisterOperator("", 0, constOp(0)); err == nil {
		t.Error("empty name accepted")
	}
	if err := c.RegisterOperator("two words", 0, constOp(0)); err == nil {
		t.Error("name with a space accepted")
	}
	if err := c.RegisterOperator("neg", -1, constOp(0)); err == nil {
		t.Error("negative arity accepted")
	}
	if err := c.RegisterOperator("nil", 0, nil); err == nil {
		t.Error("nil callback accepted")
	}
	if len(c.Operators()) != 0 {
		t.Fatalf("invalid registrations left entries: %v", c.Operators())
	}
}

func TestOperatorLookup(t *testing.T) {
	c := New()
	op, ok := c.Operator("cmp3")
	if !ok || op.Arity != 3 || op.Name != "cmp3" {
		t.Fatalf("Operator(cmp3) = (%+v,%v)", op, ok)
	}
	if _, ok := c.Operator("CMP3"); ok {
		t.Fatalf("lookup must be case sensitive")
	}
	c.ClearOperators()
	if _, ok := c.Operator("cmp3"); ok {
		t.Fatalf("ClearOperators left cmp3 behind")
	}
}

func TestRegistryHashCollision(t *testing.T) {
	for _, policy := range []DuplicatePolicy{Shadow, Override} {
		r := newRegistry(policy)
		r.add("a", 0, constOp(1), LibHelp{})
		r.add("b", 0, constOp(2), LibHelp{})
		r.add("b", 0, constOp(3), LibHelp{})

		// pretend "b" hashes onto the slot owned by "a"
		hb := fnv1a.HashString64("b")
		r.index[hb] = 0

		i := r.find("b")
		want := 1
		if policy == Override {
			want = 2
		}
		if i != want {
			t.Errorf("%v: find(b) = %d, want %d", policy, i, want)
		}
		if r.find("c") != -1 {
			t.Errorf("%v: find(c) should miss", policy)
		}
	}
}

func TestParseDuplicatePolicy(t *testing.T) {
	for in, want := range map[string]DuplicatePolicy{"": Shadow, "Shadow": Shadow, "override": Override, " reject ": Reject} {
		got, err := ParseDuplicatePolicy(in)
		if err != nil || got != want {
			t.Errorf("ParseDuplicatePolicy(%q) = (%v,%v), want %v", in, got, err, want)
		}
	}
	if _, err := ParseDuplicatePolicy("first"); err == nil {
		t.Error("unknown policy accepted")
	}
}
