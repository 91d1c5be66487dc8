package cli

import (
	"fmt"

	"github.com/alexanderramin/northstar/internal/dispatch"
	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/spf13/cobra"
)

func newVisionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vision",
		Short: "Manage visions",
	}
	cmd.AddCommand(
		newVisionAddCmd(app),
		newVisionListCmd(app),
		newVisionUpdateCmd(app),
		newVisionLinkCmd(app),
		newVisionRemoveCmd(app),
	)
	return cmd
}

func newVisionAddCmd(app *App) *cobra.Command {
	var title, statement, yearID string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a vision under a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := app.Store.Get(domain.KindYear, yearID); !ok {
				return fmt.Errorf("year %q not found (run sync?)", yearID)
			}
			v := &domain.Vision{
				YearID:    yearID,
				Title:     title,
				Statement: statement,
			}
			id, err := app.Dispatcher.Create(cmd.Context(), domain.KindVision, v)
			if err != nil {
				return err
			}
			fmt.Printf("created vision %s\n", shortID(id))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "vision title")
	cmd.Flags().StringVar(&statement, "statement", "", "vision statement")
	cmd.Flags().StringVar(&yearID, "year-id", "", "owning year id")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("year-id")
	return cmd
}

func newVisionListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List visions",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range app.Store.List(domain.KindVision) {
				v := e.(*domain.Vision)
				printRow(v.ID, v.Title, shortID(v.YearID))
			}
			return nil
		},
	}
}

func newVisionUpdateCmd(app *App) *cobra.Command {
	var title, statement, yearID string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a vision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := patchFromFlags(cmd.Flags(), map[string]*string{
				"title":     &title,
				"statement": &statement,
				"yearId":    &yearID,
			})
			return app.Dispatcher.Update(cmd.Context(), domain.KindVision, args[0], patch)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "vision title")
	cmd.Flags().StringVar(&statement, "statement", "", "vision statement")
	cmd.Flags().StringVar(&yearID, "year-id", "", "owning year id")
	return cmd
}

// newVisionLinkCmd toggles brand/location membership on a vision. Toggling a
// present id removes it, an absent id adds it.
func newVisionLinkCmd(app *App) *cobra.Command {
	var brandID, locationID string
	cmd := &cobra.Command{
		Use:   "link <id>",
		Short: "Toggle a brand or location link on a vision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := app.Store.Get(domain.KindVision, args[0])
			if !ok {
				return dispatch.ErrNotFound
			}
			v := e.(*domain.Vision)
			patch := domain.Patch{}
			if brandID != "" {
				patch["brandIds"] = v.BrandIDs.Toggle(brandID)
			}
			if locationID != "" {
				patch["locationIds"] = v.LocationIDs.Toggle(locationID)
			}
			if len(patch) == 0 {
				return fmt.Errorf("pass --brand-id or --location-id")
			}
			return app.Dispatcher.Update(cmd.Context(), domain.KindVision, args[0], patch)
		},
	}
	cmd.Flags().StringVar(&brandID, "brand-id", "", "brand id to toggle")
	cmd.Flags().StringVar(&locationID, "location-id", "", "location id to toggle")
	return cmd
}

func newVisionRemoveCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a vision and its themes, initiatives, and projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.Context(), app, domain.KindVision, args[0], yes)
		},
	}
	addYesFlag(cmd, &yes)
	return cmd
}
