package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose   bool
	backend   string
	storePath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "brutalist",
		Short:         "Brutalist manages UI themes and resolves utility classes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.backend, "storage", "", "Storage backend override (file, sqlite, memory)")
	cmd.PersistentFlags().StringVar(&flags.storePath, "storage-path", "", "Storage location override")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newUtilitiesCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newPickCmd(flags))

	return cmd
}
