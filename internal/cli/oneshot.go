package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vylia99/contactbook/internal/commands"
)

// newOneShotCmd exposes one interactive command as a standalone subcommand:
// it loads the book, runs the handler, saves when the command mutates, and
// prints the handler's result.
func newOneShotCmd(flags *rootFlags, c commands.Command) *cobra.Command {
	return &cobra.Command{
		Use:   c.Usage,
		Short: c.Short,
		Args:  cobra.MinimumNArgs(c.MinArgs),
		RunE: func(_ *cobra.Command, args []string) error {
			app, err := openApp(flags)
			if err != nil {
				return err
			}

			book, err := app.store.Load()
			if err != nil {
				return err
			}

			registry := commands.New()
			cmd, ok := registry.Lookup(c.Name)
			if !ok {
				return fmt.Errorf("command %q not registered", c.Name)
			}

			out, err := registry.Run(cmd, args, book)
			if err != nil {
				return err
			}

			if c.Mutating {
				if err := app.store.Save(book); err != nil {
					return err
				}
			}

			fmt.Println(out)
			return nil
		},
	}
}
