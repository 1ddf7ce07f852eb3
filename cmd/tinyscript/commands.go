package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/log"
	"gopkg.in/urfave/cli.v1"

	"tinyscript/pkg/interpreter"
	"tinyscript/pkg/utils"
)

var rawFlag = cli.BoolFlag{
	Name:  "raw",
	Usage: "Dump the full node structure instead of one line per statement",
}

// dumper prints the AST node structure. Node String methods are skipped,
// and pointer addresses are left out so output is stable.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// loadScript resolves the command's script argument and reads it.
func (s *session) loadScript(ctx *cli.Context) (path, src string, err error) {
	if ctx.NArg() != 1 {
		return "", "", usageErrorf("expected exactly one script argument, got %d (see --help)", ctx.NArg())
	}
	path, src, err = utils.ReadSource(ctx.Args().First())
	if err != nil {
		return "", "", err
	}
	log.Debug("Loaded script", "path", path, "bytes", len(src))
	return path, src, nil
}

// runScript runs a script, writing its out lines to stdout.
func (s *session) runScript(ctx *cli.Context) error {
	cfg, err := s.setup(ctx)
	if err != nil {
		return err
	}
	path, src, err := s.loadScript(ctx)
	if err != nil {
		return err
	}

	env, err := interpreter.Run(src, cfg.Interpreter, interpreter.WithOutput(s.stdout))
	if err != nil {
		return &scriptError{path: path, src: src, err: err}
	}
	log.Debug("Script finished", "path", path, "globals", env.Len())
	return nil
}

// printTokens lists a script's tokens, one per line.
func (s *session) printTokens(ctx *cli.Context) error {
	if _, err := s.setup(ctx); err != nil {
		return err
	}
	path, src, err := s.loadScript(ctx)
	if err != nil {
		return err
	}

	tokens, err := interpreter.Lex(src)
	for _, tok := range tokens {
		fmt.Fprintln(s.stdout, tok)
	}
	if err != nil {
		return &scriptError{path: path, src: src, err: err}
	}
	return nil
}

// printAST lists a script's statements, one per line, or dumps them
// in full with --raw.
func (s *session) printAST(ctx *cli.Context) error {
	if _, err := s.setup(ctx); err != nil {
		return err
	}
	path, src, err := s.loadScript(ctx)
	if err != nil {
		return err
	}

	stmts, err := interpreter.Parse(src)
	if err != nil {
		return &scriptError{path: path, src: src, err: err}
	}
	if ctx.Bool(rawFlag.Name) {
		dumper.Fdump(s.stdout, stmts)
		return nil
	}
	for _, stmt := range stmts {
		fmt.Fprintln(s.stdout, stmt)
	}
	return nil
}
