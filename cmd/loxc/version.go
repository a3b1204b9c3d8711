package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is the loxc release.
const version = "0.1.0-dev"

type versionCmd struct {
	gs     *globalState
	isJSON bool
}

func (c *versionCmd) run(_ *cobra.Command, _ []string) error {
	if !c.isJSON {
		_, err := fmt.Fprintf(c.gs.stdout, "loxc version %s\ngo version %s\n", version, runtime.Version())
		return err
	}

	details, err := json.Marshal(map[string]string{
		"version":   version,
		"goVersion": runtime.Version(),
		"goOs":      runtime.GOOS,
		"goArch":    runtime.GOARCH,
	})
	if err != nil {
		return fmt.Errorf("failed to produce JSON version details: %w", err)
	}
	_, err = fmt.Fprintln(c.gs.stdout, string(details))
	return err
}

func getCmdVersion(gs *globalState) *cobra.Command {
	versionCmd := &versionCmd{gs: gs}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show application version",
		Long:  `Show the application version and exit.`,
		Args:  cobra.NoArgs,
		RunE:  versionCmd.run,

		Annotations: map[string]string{skipConfigAnnotation: "true"},
	}
	cmd.Flags().BoolVar(&versionCmd.isJSON, "json", false, "print version information as JSON")
	return cmd
}
