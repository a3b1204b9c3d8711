package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/loxc/internal/diag"
	"github.com/you-not-fish/loxc/internal/errext"
	"github.com/you-not-fish/loxc/internal/errext/exitcodes"
	"github.com/you-not-fish/loxc/internal/loader"
	"github.com/you-not-fish/loxc/internal/syntax"
)

func getCmdCheck(c *rootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file|->...",
		Short: "Report diagnostics for one or more source files",
		Long: `Scan and parse every file and report its diagnostics. All files are
checked even when some fail; the exit code is that of the most severe
failure.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.runCheck(args)
		},
	}
}

func (c *rootCommand) runCheck(srcs []string) error {
	var worst exitcodes.ExitCode
	failed := 0

	for _, src := range srcs {
		name, err := c.checkOne(src)
		if err == nil {
			fmt.Fprintf(c.gs.stdout, "%s: ok\n", name)
			continue
		}
		failed++
		if code, ok := errext.ExitCodeOf(err); ok && code > worst {
			worst = code
		}
	}

	if failed == 0 {
		return nil
	}
	return diagnosticsError{
		msg:  fmt.Sprintf("%d of %d files failed", failed, len(srcs)),
		code: worst,
	}
}

// checkOne reports the diagnostics of src and returns its display name.
func (c *rootCommand) checkOne(src string) (string, error) {
	sd, err := c.gs.load(src)
	if err != nil {
		name := src
		if src == "-" {
			name = loader.StdinName
		}
		p := diag.NewPrinter(c.gs.stderr, nil)
		p.Err(err)
		p.Summary(name)
		return name, err
	}
	toks, errs := c.scan(sd)
	_, err = syntax.Parse(sd.Name, toks)
	return sd.Name, c.report(sd, errs, err)
}
