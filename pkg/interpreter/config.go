package interpreter

import (
	"fmt"
	"sort"
)

// Config holds the settings a host can apply to a run.
type Config struct {
	// Defines pre-binds globals before the first statement runs. Values
	// made only of decimal digits bind integers, anything else strings.
	Defines map[string]string `toml:",omitempty"`
}

// DefaultConfig is the zero configuration: no predefined globals.
var DefaultConfig = Config{}

// Validate checks that every define names a legal, non-keyword identifier.
func (c Config) Validate() error {
	for _, name := range c.defineNames() {
		if !isIdentifier(name) {
			return fmt.Errorf("invalid define name %q", name)
		}
		if _, ok := keywords[name]; ok {
			return fmt.Errorf("define name %q is a keyword", name)
		}
	}
	return nil
}

// seed binds every define in env, replacing existing bindings of the
// same name. c must already be valid.
func (c Config) seed(env *Environment) {
	for _, name := range c.defineNames() {
		env.Set(name, parseValue(c.Defines[name]))
	}
}

func (c Config) defineNames() []string {
	names := make([]string, 0, len(c.Defines))
	for name := range c.Defines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isIdentifier(s string) bool {
	if s == "" || !isLetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isLetter(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return true
}
