// Package config consolidates loxc settings from defaults, a config file,
// the environment and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mstoykov/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	null "gopkg.in/guregu/null.v3"
	"gopkg.in/yaml.v3"

	"github.com/you-not-fish/loxc/internal/errext"
	"github.com/you-not-fish/loxc/internal/errext/exitcodes"
)

// EnvConfigPath names the config file when --config is not given.
const EnvConfigPath = "LOXC_CONFIG"

// Output formats accepted for logs and AST dumps.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds every user-tunable setting. A field that is not Valid was
// not set by the layer it came from and does not override lower layers.
type Config struct {
	LogLevel  null.String `yaml:"log_level" toml:"log_level" envconfig:"LOXC_LOG_LEVEL"`
	LogFormat null.String `yaml:"log_format" toml:"log_format" envconfig:"LOXC_LOG_FORMAT"`
	NoColor   null.Bool   `yaml:"no_color" toml:"no_color" envconfig:"LOXC_NO_COLOR"`
	MaxErrors null.Int    `yaml:"max_errors" toml:"max_errors" envconfig:"LOXC_MAX_ERRORS"`
	ASTFormat null.String `yaml:"ast_format" toml:"ast_format" envconfig:"LOXC_AST_FORMAT"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:  null.NewString("info", false),
		LogFormat: null.NewString(FormatText, false),
		NoColor:   null.NewBool(false, false),
		MaxErrors: null.NewInt(0, false),
		ASTFormat: null.NewString(FormatText, false),
	}
}

// Apply returns c overridden by every valid field of cfg.
func (c Config) Apply(cfg Config) Config {
	if cfg.LogLevel.Valid {
		c.LogLevel = cfg.LogLevel
	}
	if cfg.LogFormat.Valid {
		c.LogFormat = cfg.LogFormat
	}
	if cfg.NoColor.Valid {
		c.NoColor = cfg.NoColor
	}
	if cfg.MaxErrors.Valid {
		c.MaxErrors = cfg.MaxErrors
	}
	if cfg.ASTFormat.Valid {
		c.ASTFormat = cfg.ASTFormat
	}
	return c
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel.String); err != nil {
		return invalid(err, "valid levels are panic, fatal, error, warning, info, debug and trace")
	}
	if err := checkFormat("log format", c.LogFormat.String); err != nil {
		return err
	}
	if err := checkFormat("AST format", c.ASTFormat.String); err != nil {
		return err
	}
	if c.MaxErrors.Int64 < 0 {
		return invalid(fmt.Errorf("max errors must not be negative, got %d", c.MaxErrors.Int64),
			"use 0 to keep every error")
	}
	return nil
}

func checkFormat(what, v string) error {
	switch v {
	case FormatText, FormatJSON:
		return nil
	}
	return invalid(fmt.Errorf("unknown %s %q", what, v), "use text or json")
}

func invalid(err error, hint string) error {
	return errext.WithExitCodeIfNone(errext.WithHint(err, hint), exitcodes.InvalidConfig)
}

// ReadFile reads a config file from fs. The format follows the extension:
// .yaml and .yml are YAML, anything else is TOML.
func ReadFile(fs afero.Fs, path string) (Config, error) {
	var conf Config
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return conf, errext.WithExitCodeIfNone(
			fmt.Errorf("reading config %s: %w", path, err), exitcodes.InvalidConfig)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &conf)
	default:
		err = toml.Unmarshal(data, &conf)
	}
	if err != nil {
		return Config{}, invalid(fmt.Errorf("parsing config %s: %w", path, err),
			"settings are log_level, log_format, no_color, max_errors and ast_format")
	}
	return conf, nil
}

// ReadEnv reads LOXC_* settings from env.
func ReadEnv(env map[string]string) (Config, error) {
	var conf Config
	err := envconfig.Process("", &conf, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if err != nil {
		return Config{}, invalid(err, "check the LOXC_* environment variables")
	}
	return conf, nil
}

// EnvMap turns a KEY=value list, as from os.Environ, into a map.
func EnvMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}

// Consolidate builds the effective configuration: defaults, then the config
// file named by --config or LOXC_CONFIG (or found in dir), then env, then
// flags that were set explicitly. The result is validated.
func Consolidate(fs afero.Fs, dir string, flags *pflag.FlagSet, env map[string]string) (Config, error) {
	conf := Default()

	path := env[EnvConfigPath]
	if flags.Changed("config") {
		path = getString(flags, "config")
	}
	if path == "" {
		path, _ = FindFile(fs, dir)
	}
	if path != "" {
		fileConf, err := ReadFile(fs, path)
		if err != nil {
			return conf, err
		}
		conf = conf.Apply(fileConf)
	}

	envConf, err := ReadEnv(env)
	if err != nil {
		return conf, err
	}
	conf = conf.Apply(envConf).Apply(FromFlags(flags))

	return conf, conf.Validate()
}

// ErrNoConfigFile is returned by FindFile when no default file exists.
var ErrNoConfigFile = errors.New("no config file found")

// FindFile looks for loxc.toml, loxc.yaml or loxc.yml in dir, in that
// order.
func FindFile(fs afero.Fs, dir string) (string, error) {
	for _, name := range []string{"loxc.toml", "loxc.yaml", "loxc.yml"} {
		p := filepath.Join(dir, name)
		if ok, _ := afero.Exists(fs, p); ok {
			return p, nil
		}
	}
	return "", ErrNoConfigFile
}
