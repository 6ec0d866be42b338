package main

import (
	"errors"
	"fmt"
	"html"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brutalist/internal/utility"
)

type utilitiesResolveOptions struct {
	styles []string
	base   []string
	html   bool
}

func newUtilitiesCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "utilities",
		Short: "Work with utility classes",
	}

	cmd.AddCommand(newUtilitiesResolveCmd(rootFlags))

	return cmd
}

func newUtilitiesResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &utilitiesResolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <classes>",
		Short: "Resolve a className into classes, inline style and scoped CSS",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(rootFlags, "resolve utilities", func(cmd *cobra.Command, args []string, app *AppContext) error {
			return runUtilitiesResolve(cmd, app, args[0], opts)
		}),
	}

	cmd.Flags().StringArrayVarP(&opts.styles, "style", "s", nil, "Inline style as property=value (repeatable)")
	cmd.Flags().StringArrayVarP(&opts.base, "base", "b", nil, "Component base class (repeatable)")
	cmd.Flags().BoolVar(&opts.html, "html", false, "Print an HTML fragment with the theme and generated styles")

	return cmd
}

func runUtilitiesResolve(cmd *cobra.Command, app *AppContext, className string, opts *utilitiesResolveOptions) error {
	style, ok := utility.ParseStyleAssignments(opts.styles)
	if !ok {
		return newCommandError("resolve utilities", "parsing --style", errors.New("expected property=value"), "Pass styles like --style color=red --style marginTop=4px.")
	}

	inst := utility.NewInstance(app.Document, utility.WithLogger(app.Logger.Component("utility")))
	defer inst.Close()
	res := inst.Resolve(className, style, opts.base...)

	out := cmd.OutOrStdout()
	if opts.html {
		_, _ = fmt.Fprint(out, app.Document.RenderHead())
		_, _ = fmt.Fprintf(out, "<div class=\"%s\" style=\"%s\"></div>\n", html.EscapeString(res.ClassName), html.EscapeString(res.Style.String()))
		return nil
	}

	_, _ = fmt.Fprintf(out, "className: %s\n", res.ClassName)
	_, _ = fmt.Fprintf(out, "style: %s\n", res.Style.String())
	if res.CSS != "" {
		_, _ = fmt.Fprintf(out, "\n%s\n", res.CSS)
	}
	return nil
}
