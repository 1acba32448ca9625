package rpn

import (
	"fmt"
	"strings"

	"github.com/segmentio/fasthash/fnv1a"
)

// OperatorFunc implements an operator. It runs only when the stack holds at least
// the operator's declared arity and decides itself how many values to pop and push.
type OperatorFunc func(c *Context) Result

// LibHelp describes a builtin operator for interactive help.
type LibHelp struct {
	In     string // stack before, top last
	Out    string // stack after
	Action string
}

// Operator is a named entry of the operator table.
type Operator struct {
	Name  string
	Arity int
	Fn    OperatorFunc
	Help  LibHelp
}

// DuplicatePolicy decides what registering an already known operator name does.
type DuplicatePolicy uint8

const (
	// Shadow keeps every registration, lookups resolve to the first one.
	Shadow DuplicatePolicy = iota
	// Override keeps every registration, lookups resolve to the most recent one.
	Override
	// Reject refuses the second registration with ErrDuplicateOperator.
	Reject
)

func (p DuplicatePolicy) String() string {
	switch p {
	case Shadow:
		return "shadow"
	case Override:
		return "override"
	case Reject:
		return "reject"
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

// ParseDuplicatePolicy maps a policy name back to its value.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "shadow":
		return Shadow, nil
	case "override":
		return Override, nil
	case "reject":
		return Reject, nil
	}
	return Shadow, fmt.Errorf("unknown duplicate policy %q", s)
}

// Registry is the ordered operator table of a Context.
type Registry struct {
	policy DuplicatePolicy
	ops    []*Operator
	index  map[uint64]int // name hash -> entry that lookups resolve to
}

func newRegistry(policy DuplicatePolicy) *Registry {
	return &Registry{
		policy: policy,
		ops:    make([]*Operator, 0, opsInitialSize),
		index:  make(map[uint64]int, opsInitialSize),
	}
}

func (r *Registry) add(name string, arity int, fn OperatorFunc, help LibHelp) error {
	if name == "" || strings.IndexFunc(name, isSpace) >= 0 {
		return fmt.Errorf("invalid operator name %q", name)
	}
	if arity < 0 {
		return fmt.Errorf("operator %q: negative arity %d", name, arity)
	}
	if fn == nil {
		return fmt.Errorf("operator %q: nil callback", name)
	}
	if r.policy == Reject && r.find(name) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateOperator, name)
	}

	r.ops = append(r.ops, &Operator{Name: name, Arity: arity, Fn: fn, Help: help})
	pos := len(r.ops) - 1

	h := fnv1a.HashString64(name)
	cur, taken := r.index[h]
	switch {
	case !taken:
		r.index[h] = pos
	case r.policy == Override && r.ops[cur].Name == name:
		r.index[h] = pos
	}
	// a slot held by a different name is a hash collision, find falls back to a scan
	return nil
}

func (r *Registry) find(name string) int {
	i, ok := r.index[fnv1a.HashString64(name)]
	if !ok {
		return -1
	}
	if r.ops[i].Name == name {
		return i
	}
	return r.scan(name)
}

func (r *Registry) scan(name string) int {
	if r.policy == Override {
		for i := len(r.ops) - 1; i >= 0; i-- {
			if r.ops[i].Name == name {
				return i
			}
		}
		return -1
	}
	for i, op := range r.ops {
		if op.Name == name {
			return i
		}
	}
	return -1
}

func (r *Registry) lookup(name string) *Operator {
	if i := r.find(name); i >= 0 {
		return r.ops[i]
	}
	return nil
}

func (r *Registry) names() []string {
	out := make([]string, len(r.ops))
	for i, op := range r.ops {
		out[i] = op.Name
	}
	return out
}

func (r *Registry) clear() {
	r.ops = make([]*Operator, 0, opsInitialSize)
	r.index = make(map[uint64]int, opsInitialSize)
}

func (r *Registry) size() int {
	return len(r.ops)
}
