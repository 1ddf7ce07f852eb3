// Package interpreter implements tinyscript: a lexer, a recursive-descent
// parser and a tree-walking evaluator for a language of global variable
// assignments, integer/string expressions and out statements.
//
// Pipeline: source → Lexer → Parser → []Stmt → Interpreter → output lines
//
// A complete program (the "=" in an assignment may be left out):
//
//	x = 5
//	y 10
//	out x + y * 2
//	out "done"
package interpreter
