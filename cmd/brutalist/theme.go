package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/brutalist/internal/theme"
)

type themeCurrentOptions struct {
	jsonOutput bool
	yamlOutput bool
}

type themeResetOptions struct {
	force bool
}

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and change the active theme",
	}

	cmd.AddCommand(newThemeCurrentCmd(rootFlags))
	cmd.AddCommand(newThemeSetCmd(rootFlags))
	cmd.AddCommand(newThemeImportCmd(rootFlags))
	cmd.AddCommand(newThemeRandomCmd(rootFlags))
	cmd.AddCommand(newThemeResetCmd(rootFlags))

	return cmd
}

func newThemeCurrentCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &themeCurrentOptions{}

	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show the active theme",
		Args:  cobra.NoArgs,
		RunE: runWithApp(rootFlags, "show current theme", func(cmd *cobra.Command, args []string, app *AppContext) error {
			current := app.Provider.Current()
			if opts.jsonOutput || opts.yamlOutput {
				return writeTheme(cmd, current, opts.jsonOutput, opts.yamlOutput)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Source: %s\n", app.Provider.Source())
			return writeTheme(cmd, current, false, false)
		}),
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.yamlOutput, "yaml", false, "Output in YAML format")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}

func newThemeSetCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "set <id>",
		Short: "Activate a built-in theme",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(rootFlags, "set theme", func(cmd *cobra.Command, args []string, app *AppContext) error {
			id := args[0]
			if !app.Provider.SetThemeByID(cmd.Context(), id) {
				return newCommandError("set theme", fmt.Sprintf("activating theme %q", id), errors.New("unknown theme id"), "Run 'brutalist themes list' to view available themes.")
			}
			current := app.Provider.Current()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Activated theme '%s' (%s)\n", current.ID, current.Name)
			return nil
		}),
	}
}

func newThemeImportCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Activate a theme from a JSON, YAML or TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(rootFlags, "import theme", func(cmd *cobra.Command, args []string, app *AppContext) error {
			path := args[0]
			record, err := readThemeFile(path)
			if err != nil {
				return newCommandError("import theme", fmt.Sprintf("reading %s", path), err, "Check that the file exists and is valid JSON, YAML or TOML.")
			}
			candidate, err := theme.ThemeFromRecord(record)
			if err != nil {
				return newCommandError("import theme", fmt.Sprintf("validating %s", path), err, "A theme needs id, name, description and all sixteen colors.")
			}
			if !app.Provider.SetTheme(cmd.Context(), candidate) {
				return newCommandError("import theme", fmt.Sprintf("activating %s", path), errors.New("theme rejected"), "Run with --verbose to see why the theme was rejected.")
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported theme '%s' (%s)\n", candidate.ID, candidate.Name)
			return nil
		}),
	}
}

func newThemeRandomCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Activate a theme assembled from random built-in colors",
		Args:  cobra.NoArgs,
		RunE: runWithApp(rootFlags, "randomize theme", func(cmd *cobra.Command, args []string, app *AppContext) error {
			t := app.Provider.RandomizeTheme(cmd.Context())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Activated random theme '%s'\n", t.ID)
			return writeTheme(cmd, t, false, false)
		}),
	}
}

func newThemeResetCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &themeResetOptions{}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Return to the default theme and clear the saved one",
		Args:  cobra.NoArgs,
		RunE: runWithApp(rootFlags, "reset theme", func(cmd *cobra.Command, args []string, app *AppContext) error {
			if !opts.force {
				confirmed, err := confirmReset(cmd, app.Provider.Current())
				if err != nil {
					return err
				}
				if !confirmed {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}
			app.Provider.ResetToDefault(cmd.Context())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Reset to '%s'\n", app.Provider.Current().ID)
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Reset without confirmation")

	return cmd
}

func confirmReset(cmd *cobra.Command, current theme.Theme) (bool, error) {
	if !isTerminal(cmd.InOrStdin()) {
		return false, newCommandError("reset theme", "prompting for confirmation", errors.New("not a terminal"), "Use --force when running in non-interactive environments.")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Replace '%s' with the default theme and forget the saved one? [y/N]: ", current.ID)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false, scanner.Err()
	}

	answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return answer == "y" || answer == "yes", nil
}

func isTerminal(reader any) bool {
	if fd, ok := reader.(interface{ Fd() uintptr }); ok {
		return termIsTerminal(int(fd.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
