package interpreter

import "strconv"

// Value is a runtime value: Int or Str.
type Value interface {
	value()
	// Kind names the value's type in error messages.
	Kind() string
	// String renders the value the way an out statement prints it.
	String() string
}

// Int is an integer value.
type Int int64

func (Int) value()           {}
func (Int) Kind() string     { return "int" }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// Str is a string value. It prints without quotes.
type Str string

func (Str) value()           {}
func (Str) Kind() string     { return "string" }
func (s Str) String() string { return string(s) }

// parseValue turns text from outside the language (config, flags) into
// a Value: all decimal digits make an Int, anything else a Str.
func parseValue(text string) Value {
	if allDigits(text) {
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Int(n)
		}
	}
	return Str(text)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
