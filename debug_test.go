package rpn

import (
	"reflect"
	"testing"
)

func TestContextDebugHook(t *testing.T) {
	var seen []string
	c := New(WithDebugHook(func(c *Context, tok string) {
		seen = append(seen, tok)
	}))
	c.Evaluate(" 1  2 + nope 3", false)

	if want := []string{"1", "2", "+", "nope"}; !reflect.DeepEqual(seen, want) {
		t.Fatalf("hook saw %q, want %q", seen, want)
	}
}

func TestGlobalDebugHook(t *testing.T) {
	defer SetDebugHook(nil)

	var seen []string
	SetDebugHook(func(c *Context, tok string) {
		seen = append(seen, tok)
	})
	c := New()
	c.Evaluate("1 2 +", false)
	if len(seen) != 3 {
		t.Fatalf("global hook saw %q, want 3 tokens", seen)
	}

	// last registration wins
	var second int
	SetDebugHook(func(*Context, string) { second++ })
	c.Evaluate("1", false)
	if len(seen) != 3 || second != 1 {
		t.Fatalf("replaced hook still called, first=%d second=%d", len(seen), second)
	}

	SetDebugHook(nil)
	c.Evaluate("1", false)
	if second != 1 {
		t.Fatalf("cleared hook still called")
	}
}

func TestContextHookOverridesGlobal(t *testing.T) {
	defer SetDebugHook(nil)

	var global, local int
	SetDebugHook(func(*Context, string) { global++ })

	c := New()
	c.SetDebugHook(func(*Context, string) { local++ })
	c.Evaluate("1 2", false)
	if global != 0 || local != 2 {
		t.Fatalf("global=%d local=%d, want 0 and 2", global, local)
	}

	c.SetDebugHook(nil)
	c.Evaluate("1", false)
	if global != 1 {
		t.Fatalf("global hook not used once the context hook is removed")
	}
}

func TestHookDoesNotAffectResult(t *testing.T) {
	c := New(WithDebugHook(func(c *Context, tok string) {}))
	if err := c.Evaluate("2 3 *", false); err != nil {
		t.Fatal(err)
	}
	if v, _ := c.Stack().Pop(); v != 6 {
		t.Fatalf("2 3 * = %v with a hook installed", v)
	}
}
