package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brutalist/internal/server"
	"github.com/alexisbeaulieu97/brutalist/internal/tui"
)

type serveOptions struct {
	listen string
}

func newServeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the theme API and live preview",
		Args:  cobra.NoArgs,
		RunE: runWithApp(rootFlags, "serve", func(cmd *cobra.Command, args []string, app *AppContext) error {
			addr := app.Config.Server.Listen
			if opts.listen != "" {
				addr = opts.listen
			}

			ctx, cancel := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			srv := server.New(app.Provider, app.Document, app.Logger)
			srv.ForwardEvents(app.Publisher)
			defer srv.Close()

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Preview at http://%s/\n", addr)
			if err := srv.ListenAndServe(ctx, addr); err != nil {
				return newCommandError("serve", fmt.Sprintf("listening on %s", addr), err, "Pick a free address with --listen or server.listen.")
			}
			return nil
		}),
	}

	cmd.Flags().StringVarP(&opts.listen, "listen", "l", "", "Address to listen on (host:port)")

	return cmd
}

func newPickCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Pick a theme interactively",
		Args:  cobra.NoArgs,
		RunE: runWithApp(rootFlags, "pick theme", func(cmd *cobra.Command, args []string, app *AppContext) error {
			if err := tui.Run(commandContext(cmd), app.Provider, tui.WithLogger(app.Logger.Component("tui"))); err != nil {
				return newCommandError("pick theme", "running the picker", err, "Run the picker from an interactive terminal.")
			}
			return nil
		}),
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
