package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/naoina/toml"
	"gopkg.in/urfave/cli.v1"

	"tinyscript/pkg/interpreter"
)

var (
	dumpConfigCommand = cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Show configuration values",
		ArgsUsage:   "[dumpfile]",
		Description: `The dumpconfig command shows the effective configuration after the config file and flags are applied.`,
	}

	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

type logConfig struct {
	Verbosity int
	Color     bool
}

type tinyscriptConfig struct {
	Interpreter interpreter.Config
	Log         logConfig
}

func defaultConfig() tinyscriptConfig {
	return tinyscriptConfig{
		Interpreter: interpreter.DefaultConfig,
		Log: logConfig{
			Verbosity: 3,
			Color:     true,
		},
	}
}

func loadConfig(file string, cfg *tinyscriptConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig loads defaults, then the config file, then applies flags.
func makeConfig(ctx *cli.Context) (tinyscriptConfig, error) {
	cfg := defaultConfig()

	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}

	if ctx.GlobalIsSet(verbosityFlag.Name) {
		cfg.Log.Verbosity = ctx.GlobalInt(verbosityFlag.Name)
	}
	if ctx.GlobalBool(traceFlag.Name) && cfg.Log.Verbosity < 4 {
		cfg.Log.Verbosity = 4
	}
	if ctx.GlobalBool(noColorFlag.Name) {
		cfg.Log.Color = false
	}
	define := flagName(defineFlag)
	for _, def := range ctx.GlobalStringSlice(define) {
		name, value, ok := strings.Cut(def, "=")
		if !ok {
			return cfg, usageErrorf("invalid --%s %q, want name=value", define, def)
		}
		if cfg.Interpreter.Defines == nil {
			cfg.Interpreter.Defines = make(map[string]string)
		}
		cfg.Interpreter.Defines[name] = value
	}

	if err := cfg.Interpreter.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// flagName returns the long name of a flag declared as "name, n". The
// context getters only match a single name.
func flagName(f cli.Flag) string {
	name, _, _ := strings.Cut(f.GetName(), ",")
	return strings.TrimSpace(name)
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}

	if ctx.NArg() > 0 {
		return os.WriteFile(ctx.Args().Get(0), out, 0o644)
	}
	_, err = ctx.App.Writer.Write(out)
	return err
}
