package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/you-not-fish/loxc/internal/config"
	"github.com/you-not-fish/loxc/internal/diag"
	"github.com/you-not-fish/loxc/internal/loader"
)

// globalState holds everything a command touches outside the process, so
// tests can swap in memory-backed replacements.
type globalState struct {
	fs     afero.Fs
	getwd  func() (string, error)
	env    map[string]string
	stdin  io.Reader
	stdout io.Writer
	stderr diag.Console
	logger *logrus.Logger
}

func newGlobalState() *globalState {
	env := config.EnvMap(os.Environ())

	// https://no-color.org/: any value, even empty, disables colors.
	_, noColor := env["NO_COLOR"]
	stderr := diag.NewConsole(os.Stderr, noColor)

	return &globalState{
		fs:     afero.NewOsFs(),
		getwd:  os.Getwd,
		env:    env,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: stderr,
		logger: &logrus.Logger{
			Out:       stderr.Writer,
			Formatter: new(logrus.TextFormatter),
			Hooks:     make(logrus.LevelHooks),
			Level:     logrus.InfoLevel,
		},
	}
}

// load reads one source argument relative to the working directory.
func (gs *globalState) load(src string) (*loader.SourceData, error) {
	pwd, err := gs.getwd()
	if err != nil {
		return nil, err
	}
	return loader.ReadSource(gs.logger, src, pwd, gs.fs, gs.stdin)
}
