package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brutalist/internal/theme"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type buildInfo struct {
	Version  string `json:"version"`
	Commit   string `json:"commit"`
	Built    string `json:"built"`
	Themes   int    `json:"builtinThemes"`
	ColorSet int    `json:"colorKeys"`
}

func newVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := buildInfo{
				Version:  version,
				Commit:   commit,
				Built:    date,
				Themes:   len(theme.BuiltinThemes()),
				ColorSet: len(theme.ColorKeys()),
			}
			if jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(info)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Brutalist %s\ncommit: %s\nbuilt: %s\nthemes: %d built-in, %d colors each\n",
				info.Version, info.Commit, info.Built, info.Themes, info.ColorSet)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
