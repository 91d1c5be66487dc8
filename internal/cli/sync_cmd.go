package cli

import (
	"fmt"

	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/spf13/cobra"
)

func newSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Hydrate the local mirror from both remote stores",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Dispatcher.Sync(cmd.Context()); err != nil {
				return err
			}
			total := 0
			for _, kind := range domain.AllKinds {
				total += len(app.Store.List(kind))
			}
			fmt.Printf("synced %d entities\n", total)
			return nil
		},
	}
}
