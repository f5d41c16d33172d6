package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vylia99/contactbook/internal/commands"
	"github.com/vylia99/contactbook/internal/infra/consoleui"
	"github.com/vylia99/contactbook/internal/infra/logger"
	"github.com/vylia99/contactbook/internal/session"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, commands.FormatError(err))
		os.Exit(1)
	}
}

type rootFlags struct {
	dataDir string
	storage string
	debug   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "contactbook",
		Short:         "contactbook — phone book assistant for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := openApp(flags)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{
				DataDir: app.dataDir,
				Debug:   flags.debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			ui := consoleui.New(os.Stdin, os.Stdout)
			s := session.New(ui, app.store, commands.New(), logger.L())
			return s.Run()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "Data directory (default ~/.contactbook)")
	cmd.PersistentFlags().StringVar(&flags.storage, "storage", "", "Storage backend: json|sqlite (default from config)")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Enable verbose logging to <data-dir>/logs/contactbook.log")

	cmd.AddCommand(newTUICmd(flags))
	cmd.AddCommand(newVersionCmd())
	for _, c := range commands.New().Commands() {
		cmd.AddCommand(newOneShotCmd(flags, c))
	}

	return cmd
}
