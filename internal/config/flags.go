package config

import (
	"github.com/spf13/pflag"
	null "gopkg.in/guregu/null.v3"
)

// FlagSet returns the flags shared by every loxc command.
func FlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.StringP("config", "c", "", "read settings from `file` (.toml, .yaml or .yml)")
	flags.String("log-level", "info", "log `level`: error, warning, info, debug or trace")
	flags.String("log-format", FormatText, "log `format`: text or json")
	flags.Bool("no-color", false, "disable colored diagnostics")
	flags.Int64("max-errors", 0, "keep at most `n` lexical errors per file, 0 for no limit")
	return flags
}

// FromFlags collects the settings given explicitly on the command line.
// A command-local --format flag sets the AST format.
func FromFlags(flags *pflag.FlagSet) Config {
	conf := Config{
		LogLevel:  getNullString(flags, "log-level"),
		LogFormat: getNullString(flags, "log-format"),
		NoColor:   getNullBool(flags, "no-color"),
		MaxErrors: getNullInt64(flags, "max-errors"),
	}
	if flags.Lookup("format") != nil {
		conf.ASTFormat = getNullString(flags, "format")
	}
	return conf
}

func getString(flags *pflag.FlagSet, key string) string {
	v, err := flags.GetString(key)
	if err != nil {
		panic(err)
	}
	return v
}

func getNullString(flags *pflag.FlagSet, key string) null.String {
	return null.NewString(getString(flags, key), flags.Changed(key))
}

func getNullBool(flags *pflag.FlagSet, key string) null.Bool {
	v, err := flags.GetBool(key)
	if err != nil {
		panic(err)
	}
	return null.NewBool(v, flags.Changed(key))
}

func getNullInt64(flags *pflag.FlagSet, key string) null.Int {
	v, err := flags.GetInt64(key)
	if err != nil {
		panic(err)
	}
	return null.NewInt(v, flags.Changed(key))
}
