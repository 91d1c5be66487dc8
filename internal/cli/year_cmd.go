package cli

import (
	"fmt"

	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/spf13/cobra"
)

func newYearCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "year",
		Short: "Manage strategy years",
	}
	cmd.AddCommand(
		newYearAddCmd(app),
		newYearListCmd(app),
		newYearUpdateCmd(app),
		newYearRemoveCmd(app),
	)
	return cmd
}

func newYearAddCmd(app *App) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new year",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.Dispatcher.Create(cmd.Context(), domain.KindYear, &domain.Year{Title: title})
			if err != nil {
				return err
			}
			fmt.Printf("created year %s\n", shortID(id))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "year label, e.g. 2027")
	cmd.MarkFlagRequired("title")
	return cmd
}

func newYearListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List years",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range app.Store.List(domain.KindYear) {
				y := e.(*domain.Year)
				printRow(y.ID, y.Title, "")
			}
			return nil
		},
	}
}

func newYearUpdateCmd(app *App) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := patchFromFlags(cmd.Flags(), map[string]*string{"title": &title})
			return app.Dispatcher.Update(cmd.Context(), domain.KindYear, args[0], patch)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "year label")
	return cmd
}

func newYearRemoveCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a year and everything under it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.Context(), app, domain.KindYear, args[0], yes)
		},
	}
	addYesFlag(cmd, &yes)
	return cmd
}
