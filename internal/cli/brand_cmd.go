package cli

import (
	"fmt"

	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/spf13/cobra"
)

func newBrandCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brand",
		Short: "Manage brands",
	}
	cmd.AddCommand(
		newBrandAddCmd(app),
		newBrandListCmd(app),
		newBrandUpdateCmd(app),
		newBrandRemoveCmd(app),
	)
	return cmd
}

func newBrandAddCmd(app *App) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a brand",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.Dispatcher.Create(cmd.Context(), domain.KindBrand, &domain.Brand{Name: name})
			if err != nil {
				return err
			}
			fmt.Printf("created brand %s\n", shortID(id))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "brand name")
	cmd.MarkFlagRequired("name")
	return cmd
}

func newBrandListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List brands",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range app.Store.List(domain.KindBrand) {
				b := e.(*domain.Brand)
				printRow(b.ID, b.Name, "")
			}
			return nil
		},
	}
}

func newBrandUpdateCmd(app *App) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a brand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := patchFromFlags(cmd.Flags(), map[string]*string{"name": &name})
			return app.Dispatcher.Update(cmd.Context(), domain.KindBrand, args[0], patch)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "brand name")
	return cmd
}

func newBrandRemoveCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a brand and its locations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.Context(), app, domain.KindBrand, args[0], yes)
		},
	}
	addYesFlag(cmd, &yes)
	return cmd
}
