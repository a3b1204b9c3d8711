package main

import (
	"github.com/spf13/cobra"

	"github.com/you-not-fish/loxc/internal/syntax"
)

func getCmdTokens(c *rootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file|->",
		Short: "Print the token stream of a source file",
		Long: `Scan a source file and print every token with its position, kind,
length and text. Lexical errors are reported on stderr and do not stop
the scan.`,
		Args: exactArgsWithMsg(1, "pass one source file, or - for stdin"),
		RunE: func(_ *cobra.Command, args []string) error {
			sd, err := c.gs.load(args[0])
			if err != nil {
				return err
			}
			toks, errs := c.scan(sd)
			syntax.FprintTokens(c.gs.stdout, sd.Name, toks)
			return c.report(sd, errs, nil)
		},
	}
}
