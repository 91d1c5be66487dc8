package cli

import (
	"fmt"

	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/spf13/cobra"
)

func newLocationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "location",
		Short: "Manage locations",
	}
	cmd.AddCommand(
		newLocationAddCmd(app),
		newLocationListCmd(app),
		newLocationUpdateCmd(app),
		newLocationRemoveCmd(app),
	)
	return cmd
}

func newLocationAddCmd(app *App) *cobra.Command {
	var name, address, brandID string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a location under a brand",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := app.Store.Get(domain.KindBrand, brandID); !ok {
				return fmt.Errorf("brand %q not found (run sync?)", brandID)
			}
			l := &domain.Location{
				BrandID: brandID,
				Name:    name,
				Address: address,
			}
			id, err := app.Dispatcher.Create(cmd.Context(), domain.KindLocation, l)
			if err != nil {
				return err
			}
			fmt.Printf("created location %s\n", shortID(id))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "location name")
	cmd.Flags().StringVar(&address, "address", "", "street address")
	cmd.Flags().StringVar(&brandID, "brand-id", "", "owning brand id")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("brand-id")
	return cmd
}

func newLocationListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range app.Store.List(domain.KindLocation) {
				l := e.(*domain.Location)
				printRow(l.ID, l.Name, shortID(l.BrandID))
			}
			return nil
		},
	}
}

func newLocationUpdateCmd(app *App) *cobra.Command {
	var name, address, brandID string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := patchFromFlags(cmd.Flags(), map[string]*string{
				"name":    &name,
				"address": &address,
				"brandId": &brandID,
			})
			return app.Dispatcher.Update(cmd.Context(), domain.KindLocation, args[0], patch)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "location name")
	cmd.Flags().StringVar(&address, "address", "", "street address")
	cmd.Flags().StringVar(&brandID, "brand-id", "", "owning brand id")
	return cmd
}

func newLocationRemoveCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.Context(), app, domain.KindLocation, args[0], yes)
		},
	}
	addYesFlag(cmd, &yes)
	return cmd
}
