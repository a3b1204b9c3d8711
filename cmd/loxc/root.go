package main

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/loxc/internal/config"
	"github.com/you-not-fish/loxc/internal/errext"
	"github.com/you-not-fish/loxc/internal/errext/exitcodes"
)

type rootCommand struct {
	gs   *globalState
	cmd  *cobra.Command
	conf config.Config
}

func newRootCommand(gs *globalState) *rootCommand {
	c := &rootCommand{gs: gs, conf: config.Default()}
	c.cmd = &cobra.Command{
		Use:               "loxc",
		Short:             "Scan and parse Lox source files",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	c.cmd.PersistentFlags().AddFlagSet(config.FlagSet())
	c.cmd.SetOut(gs.stdout)
	c.cmd.SetErr(gs.stderr.Writer)
	c.cmd.SetIn(gs.stdin)

	c.cmd.AddCommand(
		getCmdTokens(c),
		getCmdAST(c),
		getCmdCheck(c),
		getCmdVersion(gs),
	)
	return c
}

// skipConfigAnnotation marks commands that run on the built-in defaults
// without reading any config file.
const skipConfigAnnotation = "loxc/skip-config"

func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, _ []string) error {
	if _, ok := cmd.Annotations[skipConfigAnnotation]; ok {
		c.setupLogger()
		return nil
	}

	pwd, err := c.gs.getwd()
	if err != nil {
		return err
	}
	conf, err := config.Consolidate(c.gs.fs, pwd, cmd.Flags(), c.gs.env)
	if err != nil {
		return err
	}
	c.conf = conf

	if conf.NoColor.Bool {
		c.gs.stderr.Color = false
	}
	c.setupLogger()
	c.gs.logger.WithFields(logrus.Fields{
		"level":      conf.LogLevel.String,
		"max_errors": conf.MaxErrors.Int64,
	}).Debug("Configuration loaded")
	return nil
}

func (c *rootCommand) setupLogger() {
	level, err := logrus.ParseLevel(c.conf.LogLevel.String)
	if err == nil {
		c.gs.logger.SetLevel(level)
	}
	switch c.conf.LogFormat.String {
	case config.FormatJSON:
		c.gs.logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		c.gs.logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   c.gs.stderr.Color,
			DisableColors: !c.gs.stderr.Color,
		})
	}
}

// execute runs the command line in args and returns the process exit code.
func (c *rootCommand) execute(args []string) int {
	c.cmd.SetArgs(args)
	err := c.cmd.Execute()
	if err == nil {
		return 0
	}

	code, ok := errext.ExitCodeOf(err)
	if !ok {
		code = exitcodes.Usage
	}

	msg, fields := errext.Format(err)
	var derr diagnosticsError
	if errors.As(err, &derr) {
		// Already shown in detail.
		c.gs.logger.WithFields(fields).Debug(msg)
	} else {
		c.gs.logger.WithFields(fields).Error(msg)
	}
	return int(code)
}
