package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/loxc/internal/diag"
	"github.com/you-not-fish/loxc/internal/errext/exitcodes"
	"github.com/you-not-fish/loxc/internal/loader"
	"github.com/you-not-fish/loxc/internal/syntax"
)

// diagnosticsError is returned once diagnostics have been written to
// stderr, so the failure is not logged a second time.
type diagnosticsError struct {
	msg  string
	code exitcodes.ExitCode
}

func (e diagnosticsError) Error() string                { return e.msg }
func (e diagnosticsError) ExitCode() exitcodes.ExitCode { return e.code }

func exactArgsWithMsg(n int, msg string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("accepts %d arg(s), received %d: %s", n, len(args), msg)
		}
		return nil
	}
}

// scan tokenizes a loaded source with the configured error bound.
func (c *rootCommand) scan(sd *loader.SourceData) ([]syntax.Token, syntax.ErrorList) {
	log := c.gs.logger.WithField("file", sd.Name)

	s := syntax.NewScanner(sd.Name, sd.Data,
		syntax.WithMaxErrors(int(c.conf.MaxErrors.Int64)),
		syntax.WithErrorHandler(func(pos syntax.Pos, msg string) {
			log.WithField("pos", pos.String()).Trace(msg)
		}),
	)
	toks, errs := s.Scan()
	if n := s.Dropped(); n > 0 {
		log.Warnf("%d more lexical errors not shown", n)
	}
	log.WithField("tokens", len(toks)).Debug("Scanned source")
	return toks, errs
}

// report writes lexical errors and a parse error for sd to stderr.
func (c *rootCommand) report(sd *loader.SourceData, errs syntax.ErrorList, parseErr error) error {
	p := diag.NewPrinter(c.gs.stderr, sd.Data)
	p.ErrorList(errs)
	if parseErr != nil {
		p.Err(parseErr)
	}
	if p.Count() == 0 {
		return nil
	}
	p.Summary(sd.Name)

	code := exitcodes.LexicalErrors
	if parseErr != nil {
		code = exitcodes.SyntaxError
	}
	return diagnosticsError{
		msg:  fmt.Sprintf("%s: %d errors", sd.Name, p.Count()),
		code: code,
	}
}
