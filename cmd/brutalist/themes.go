package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/brutalist/internal/components"
	"github.com/alexisbeaulieu97/brutalist/internal/theme"
	"github.com/alexisbeaulieu97/brutalist/pkg/diff"
)

type themesListOptions struct {
	jsonOutput bool
}

type themesShowOptions struct {
	jsonOutput bool
	yamlOutput bool
}

func newThemesCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Browse the built-in themes",
	}

	cmd.AddCommand(newThemesListCmd(rootFlags))
	cmd.AddCommand(newThemesShowCmd())
	cmd.AddCommand(newThemesDiffCmd(rootFlags))

	return cmd
}

func newThemesListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &themesListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List built-in themes and mark the active one",
		Args:  cobra.NoArgs,
		RunE: runWithApp(rootFlags, "list themes", func(cmd *cobra.Command, args []string, app *AppContext) error {
			return runThemesList(cmd, app.Provider.Current(), opts)
		}),
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type themeListing struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Accent      string `json:"accent"`
	Active      bool   `json:"active"`
}

func runThemesList(cmd *cobra.Command, active theme.Theme, opts *themesListOptions) error {
	builtins := theme.BuiltinThemes()
	listings := make([]themeListing, 0, len(builtins))
	for _, t := range builtins {
		listings = append(listings, themeListing{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Accent:      t.Colors.Accent,
			Active:      t.Equal(active),
		})
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(listings)
	}

	swatches := components.NewSwatchRenderer(cmd.OutOrStdout())
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(writer, "ID\tNAME\tACCENT\tPREVIEW\tACTIVE")
	for i, l := range listings {
		active := ""
		if l.Active {
			active = activeMarker(cmd)
		}
		_, _ = fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n", l.ID, l.Name, l.Accent, swatches.Strip(builtins[i]), active)
	}
	return writer.Flush()
}

func newThemesShowCmd() *cobra.Command {
	opts := &themesShowOptions{}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the colors of a built-in theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemesShow(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.yamlOutput, "yaml", false, "Output in YAML format")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}

func runThemesShow(cmd *cobra.Command, id string, opts *themesShowOptions) error {
	t, ok := theme.GetThemeByID(id)
	if !ok {
		return newCommandError("show theme", fmt.Sprintf("looking up theme %q", id), errors.New("unknown theme id"), "Run 'brutalist themes list' to view available themes.")
	}
	return writeTheme(cmd, t, opts.jsonOutput, opts.yamlOutput)
}

func writeTheme(cmd *cobra.Command, t theme.Theme, jsonOutput, yamlOutput bool) error {
	out := cmd.OutOrStdout()
	switch {
	case jsonOutput:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(t)
	case yamlOutput:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(t); err != nil {
			return err
		}
		return encoder.Close()
	default:
		_, err := fmt.Fprintln(out, components.NewSwatchRenderer(out).Palette(t))
		return err
	}
}

func activeMarker(cmd *cobra.Command) string {
	if supportsUnicode(cmd.OutOrStdout()) {
		return "✓"
	}
	return "*"
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func newThemesDiffCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from> [to]",
		Short: "Compare the CSS variables of two themes",
		Long:  "Compare the CSS variables of two built-in themes. When only one id is given it is compared with the active theme.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: runWithApp(rootFlags, "diff themes", func(cmd *cobra.Command, args []string, app *AppContext) error {
			from, ok := theme.GetThemeByID(args[0])
			if !ok {
				return newCommandError("diff themes", fmt.Sprintf("looking up theme %q", args[0]), errors.New("unknown theme id"), "Run 'brutalist themes list' to view available themes.")
			}
			to := app.Provider.Current()
			if len(args) == 2 {
				if to, ok = theme.GetThemeByID(args[1]); !ok {
					return newCommandError("diff themes", fmt.Sprintf("looking up theme %q", args[1]), errors.New("unknown theme id"), "Run 'brutalist themes list' to view available themes.")
				}
			}
			return runThemesDiff(cmd, from, to)
		}),
	}
}

func runThemesDiff(cmd *cobra.Command, from, to theme.Theme) error {
	out := cmd.OutOrStdout()
	fromCSS := theme.GenerateCSSVariables(from) + "\n"
	toCSS := theme.GenerateCSSVariables(to) + "\n"

	unified := diff.Unified(fromCSS, toCSS, from.ID, to.ID)
	if unified == "" {
		_, _ = fmt.Fprintf(out, "No differences between '%s' and '%s'.\n", from.ID, to.ID)
		return nil
	}

	changed, _ := diff.Changed(diff.Lines(fromCSS, toCSS))
	_, _ = fmt.Fprint(out, unified)
	_, _ = fmt.Fprintf(out, "\n%d of %d colors differ\n", changed, len(theme.ColorKeys()))
	return nil
}
