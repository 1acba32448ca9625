package rpn

// Variable is a named value of the variable table.
type Variable struct {
	Name  string
	Value Value
}

// Variables is the variable table of a Context. Names are unique and keep their
// first registration order. Tables stay small, lookups are linear.
type Variables struct {
	vars []Variable
}

func newVariables() *Variables {
	return &Variables{vars: make([]Variable, 0, varsInitialSize)}
}

func (t *Variables) indexOf(name string) int {
	for i := range t.vars {
		if t.vars[i].Name == name {
			return i
		}
	}
	return -1
}

// Set updates name in place, or appends it when unknown.
func (t *Variables) Set(name string, v Value) {
	if i := t.indexOf(name); i >= 0 {
		t.vars[i].Value = v
		return
	}
	t.vars = append(t.vars, Variable{Name: name, Value: v})
}

func (t *Variables) Get(name string) (Value, bool) {
	if i := t.indexOf(name); i >= 0 {
		return t.vars[i].Value, true
	}
	return 0, false
}

// Delete removes name and reports whether it was present.
func (t *Variables) Delete(name string) bool {
	i := t.indexOf(name)
	if i < 0 {
		return false
	}
	t.vars = append(t.vars[:i], t.vars[i+1:]...)
	return true
}

func (t *Variables) Clear() {
	t.vars = make([]Variable, 0, varsInitialSize)
}

func (t *Variables) Len() int {
	return len(t.vars)
}

// Names lists the variable names in registration order.
func (t *Variables) Names() []string {
	out := make([]string, len(t.vars))
	for i := range t.vars {
		out[i] = t.vars[i].Name
	}
	return out
}

// All returns a copy of the table.
func (t *Variables) All() []Variable {
	out := make([]Variable, len(t.vars))
	copy(out, t.vars)
	return out
}
