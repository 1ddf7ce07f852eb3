package interpreter

import (
	"errors"
	"fmt"
)

// Run lexes, parses and interprets src. The defines in cfg are bound in
// the interpreter's environment before the first statement runs; that is
// a fresh one, or the one passed with WithEnvironment, which is left
// untouched when src fails to parse. The returned environment holds the
// final bindings; after a runtime error it holds whatever was bound
// before the failing statement. Errors are wrapped with the stage that
// produced them and still match the sentinels with errors.Is.
func Run(src string, cfg Config, opts ...Option) (*Environment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	in := New(nil, opts...)

	program, err := Parse(src)
	if err != nil {
		stage := stageOf(err)
		in.log.Debug("Script rejected", "stage", stage, "err", err)
		return nil, fmt.Errorf("%s: %w", stage, err)
	}
	cfg.seed(in.env)
	in.program = program
	in.log.Debug("Parsed script", "statements", len(program), "defines", len(cfg.Defines))

	if err := in.Interpret(); err != nil {
		in.log.Debug("Script failed", "stage", "run", "err", err)
		return in.Env(), fmt.Errorf("run: %w", err)
	}
	return in.Env(), nil
}

// stageOf names the pipeline stage a front-end error came from.
func stageOf(err error) string {
	if errors.Is(err, ErrUnexpectedCharacter) || errors.Is(err, ErrUnterminatedString) {
		return "lex"
	}
	return "parse"
}
