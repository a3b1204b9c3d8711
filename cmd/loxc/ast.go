package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/loxc/internal/config"
	"github.com/you-not-fish/loxc/internal/syntax"
)

func getCmdAST(c *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast <file|->",
		Short: "Print the syntax tree of a source file",
		Long: `Scan and parse a source file and print its syntax tree. The tree is
printed even when the scan reported errors; a syntax error stops the
parse and no tree is printed.`,
		Args: exactArgsWithMsg(1, "pass one source file, or - for stdin"),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.runAST(args[0])
		},
	}
	cmd.Flags().String("format", config.FormatText, "tree `format`: text or json")
	return cmd
}

func (c *rootCommand) runAST(src string) error {
	sd, err := c.gs.load(src)
	if err != nil {
		return err
	}
	toks, errs := c.scan(sd)

	prog, err := syntax.Parse(sd.Name, toks)
	if err != nil {
		return c.report(sd, errs, err)
	}

	switch c.conf.ASTFormat.String {
	case config.FormatJSON:
		if err := syntax.FprintJSON(c.gs.stdout, prog); err != nil {
			return fmt.Errorf("writing tree: %w", err)
		}
	default:
		syntax.Fprint(c.gs.stdout, prog)
	}
	return c.report(sd, errs, nil)
}
