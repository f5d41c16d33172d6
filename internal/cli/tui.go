package cli

import (
	"github.com/spf13/cobra"

	"github.com/vylia99/contactbook/internal/commands"
	"github.com/vylia99/contactbook/internal/infra/logger"
	"github.com/vylia99/contactbook/internal/tui"
)

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the full-screen terminal front-end",
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

			deps := tui.Deps{
				Store:    app.store,
				Registry: commands.New(),
				Logger:   logger.L(),
			}
			return tui.Run(deps)
		},
	}
}
