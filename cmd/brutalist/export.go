package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brutalist/internal/theme"
)

type exportOptions struct {
	themeID   string
	component string
	outDir    string
	copy      bool
}

var exportFormats = []string{"css", "object", "react", "project"}

// exportFileNames names the single file written for each non-project format.
var exportFileNames = map[string]string{
	"css":    "theme.css",
	"object": theme.ProjectThemeFile,
	"react":  theme.ProjectAppFile,
}

var clipboardWrite = clipboard.WriteAll

func newExportCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:       "export <css|object|react|project>",
		Short:     "Generate code from a theme",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: exportFormats,
		RunE: runWithApp(rootFlags, "export theme", func(cmd *cobra.Command, args []string, app *AppContext) error {
			t := app.Provider.Current()
			if opts.themeID != "" {
				builtin, ok := theme.GetThemeByID(opts.themeID)
				if !ok {
					return newCommandError("export theme", fmt.Sprintf("looking up theme %q", opts.themeID), errors.New("unknown theme id"), "Run 'brutalist themes list' to view available themes.")
				}
				t = builtin
			}
			if opts.component != "" && !theme.ValidComponentName(opts.component) {
				return newCommandError("export theme", fmt.Sprintf("checking component name %q", opts.component), errors.New("invalid component name"), "Component names start with an uppercase letter and contain only letters and digits.")
			}
			return runExport(cmd, app, args[0], t, opts)
		}),
	}

	cmd.Flags().StringVarP(&opts.themeID, "theme", "t", "", "Built-in theme to export instead of the active one")
	cmd.Flags().StringVarP(&opts.component, "component", "c", "", "Component rendered inside the scaffold")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Directory to write files into")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the generated code to the clipboard")

	return cmd
}

func runExport(cmd *cobra.Command, app *AppContext, format string, t theme.Theme, opts *exportOptions) error {
	files := exportFiles(format, t, opts.component)

	if opts.outDir != "" {
		if err := writeExportFiles(opts.outDir, files); err != nil {
			return newCommandError("export theme", fmt.Sprintf("writing files to %s", opts.outDir), err, "Check that the directory is writable.")
		}
		for _, name := range sortedNames(files) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", filepath.Join(opts.outDir, name))
		}
	} else {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), renderExport(files))
	}

	if opts.copy {
		if err := clipboardWrite(renderExport(files)); err != nil {
			app.Logger.Warn("clipboard write failed", map[string]any{"format": format, "error": err.Error()})
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not copy to clipboard: %v\n", err)
			return nil
		}
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "✓ Copied to clipboard")
	}
	return nil
}

func exportFiles(format string, t theme.Theme, component string) map[string]string {
	switch format {
	case "css":
		return map[string]string{exportFileNames[format]: theme.GenerateCSSVariables(t) + "\n"}
	case "object":
		return map[string]string{exportFileNames[format]: theme.GenerateThemeObject(t)}
	case "react":
		return map[string]string{exportFileNames[format]: theme.GenerateReactScaffold(t, component)}
	default:
		return theme.GenerateProjectFiles(t, component)
	}
}

// renderExport prints a single file as is and several files with headers.
func renderExport(files map[string]string) string {
	names := sortedNames(files)
	if len(names) == 1 {
		return files[names[0]]
	}
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "// ----- %s -----\n", name)
		b.WriteString(files[name])
	}
	return b.String()
}

func writeExportFiles(dir string, files map[string]string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func sortedNames(files map[string]string) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
