// Command tinyscript runs tinyscript programs.
//
// Usage:
//
//	tinyscript [global flags] <script>
//	tinyscript [global flags] tokens|ast|dumpconfig ...
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"gopkg.in/urfave/cli.v1"

	"tinyscript/pkg/interpreter"
)

const version = "0.1.0"

var (
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value: 3,
	}
	defineFlag = cli.StringSliceFlag{
		Name:  "define, D",
		Usage: "Predefine a global variable as name=value (repeatable)",
	}
	traceFlag = cli.BoolFlag{
		Name:  "trace",
		Usage: "Log every executed statement (raises verbosity to 4)",
	}
	noColorFlag = cli.BoolFlag{
		Name:  "nocolor",
		Usage: "Disable coloured error and log output",
	}
)

// usageError marks errors in how the command was invoked.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// scriptError is a failure inside a script, reported with a source snippet.
type scriptError struct {
	path string
	src  string
	err  error
}

func (e *scriptError) Error() string { return e.path + ": " + e.err.Error() }
func (e *scriptError) Unwrap() error { return e.err }

// session carries the streams and the colour decision of one invocation.
type session struct {
	stdout, stderr io.Writer
	color          bool
}

func newApp(s *session) *cli.App {
	app := cli.NewApp()
	app.Name = "tinyscript"
	app.Usage = "run tinyscript programs"
	app.Version = version
	app.ArgsUsage = "<script>"
	app.Writer = s.stdout
	app.ErrWriter = s.stderr
	app.Flags = []cli.Flag{
		configFileFlag,
		verbosityFlag,
		defineFlag,
		traceFlag,
		noColorFlag,
	}
	app.Action = s.runScript
	app.Commands = []cli.Command{
		{
			Action:    s.runScript,
			Name:      "run",
			Usage:     "Run a script",
			ArgsUsage: "<script>",
		},
		{
			Action:    s.printTokens,
			Name:      "tokens",
			Usage:     "Print the tokens of a script",
			ArgsUsage: "<script>",
		},
		{
			Action:    s.printAST,
			Name:      "ast",
			Usage:     "Print the statements of a script",
			ArgsUsage: "<script>",
			Flags:     []cli.Flag{rawFlag},
		},
		dumpConfigCommand,
	}
	return app
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code: 0 on success,
// 2 for usage errors, 1 for everything else.
func run(args []string, stdout, stderr io.Writer) int {
	s := &session{stdout: stdout, stderr: stderr, color: isTerminal(stderr)}
	if err := newApp(s).Run(args); err != nil {
		s.report(err)
		var uerr *usageError
		if errors.As(err, &uerr) {
			return 2
		}
		return 1
	}
	return 0
}

// setup resolves the configuration and installs the root log handler.
func (s *session) setup(ctx *cli.Context) (tinyscriptConfig, error) {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return cfg, err
	}
	s.color = cfg.Log.Color && isTerminal(s.stderr)

	output := s.stderr
	if f, ok := s.stderr.(*os.File); ok && s.color {
		output = colorable.NewColorable(f)
	}
	handler := log.StreamHandler(output, log.TerminalFormat(s.color))
	log.Root().SetHandler(log.LvlFilterHandler(log.Lvl(cfg.Log.Verbosity), handler))
	return cfg, nil
}

func (s *session) report(err error) {
	msg := err.Error()
	var serr *scriptError
	if errors.As(err, &serr) {
		msg = serr.path + ": " + interpreter.Snippet(serr.src, serr.err)
	}

	prefix := color.New(color.FgRed, color.Bold)
	if s.color {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	prefix.Fprint(s.stderr, "error:")
	fmt.Fprintln(s.stderr, " "+msg)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) && os.Getenv("TERM") != "dumb"
}
