package interpreter

import (
	"fmt"
	"sort"
	"strings"
)

// Environment maps global variable names to values. There is a single
// scope; assignment overwrites. An Environment is owned by one
// Interpreter and is not safe for concurrent use.
type Environment struct {
	vars map[string]Value
}

func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]Value)}
}

// Get looks up name. The second result is false for an unbound name.
func (e *Environment) Get(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set binds name to v, replacing any previous binding.
func (e *Environment) Set(name string, v Value) {
	e.vars[name] = v
}

func (e *Environment) Len() int { return len(e.vars) }

// Names returns the bound names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of the current bindings.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.vars))
	for name, v := range e.vars {
		out[name] = v
	}
	return out
}

func (e *Environment) String() string {
	if len(e.vars) == 0 {
		return "Globals: (empty)\n"
	}
	var sb strings.Builder
	sb.WriteString("Globals:\n")
	for _, name := range e.Names() {
		v := e.vars[name]
		fmt.Fprintf(&sb, "  %-20s  %s (%s)\n", name, v, v.Kind())
	}
	return sb.String()
}
