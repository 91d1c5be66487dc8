package cli

import (
	"fmt"

	"github.com/alexanderramin/northstar/internal/dispatch"
	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/spf13/cobra"
)

func newThemeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage themes",
	}
	cmd.AddCommand(
		newThemeAddCmd(app),
		newThemeListCmd(app),
		newThemeUpdateCmd(app),
		newThemeLinkCmd(app),
		newThemeRemoveCmd(app),
	)
	return cmd
}

func newThemeAddCmd(app *App) *cobra.Command {
	var title, description, visionID, priority string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a theme under a vision",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := app.Store.Get(domain.KindVision, visionID); !ok {
				return fmt.Errorf("vision %q not found (run sync?)", visionID)
			}
			t := &domain.Theme{
				VisionID:    visionID,
				Title:       title,
				Description: description,
				Priority:    domain.Priority(priority),
			}
			id, err := app.Dispatcher.Create(cmd.Context(), domain.KindTheme, t)
			if err != nil {
				return err
			}
			fmt.Printf("created theme %s\n", shortID(id))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "theme title")
	cmd.Flags().StringVar(&description, "description", "", "theme description")
	cmd.Flags().StringVar(&visionID, "vision-id", "", "owning vision id")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityMedium), "low|medium|high")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("vision-id")
	return cmd
}

func newThemeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range app.Store.List(domain.KindTheme) {
				t := e.(*domain.Theme)
				printRow(t.ID, t.Title, string(t.Priority))
			}
			return nil
		},
	}
}

func newThemeUpdateCmd(app *App) *cobra.Command {
	var title, description, visionID, priority string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := patchFromFlags(cmd.Flags(), map[string]*string{
				"title":       &title,
				"description": &description,
				"visionId":    &visionID,
				"priority":    &priority,
			})
			return app.Dispatcher.Update(cmd.Context(), domain.KindTheme, args[0], patch)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "theme title")
	cmd.Flags().StringVar(&description, "description", "", "theme description")
	cmd.Flags().StringVar(&visionID, "vision-id", "", "owning vision id")
	cmd.Flags().StringVar(&priority, "priority", "", "low|medium|high")
	return cmd
}

func newThemeLinkCmd(app *App) *cobra.Command {
	var brandID, locationID string
	cmd := &cobra.Command{
		Use:   "link <id>",
		Short: "Toggle a brand or location link on a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := app.Store.Get(domain.KindTheme, args[0])
			if !ok {
				return dispatch.ErrNotFound
			}
			t := e.(*domain.Theme)
			patch := domain.Patch{}
			if brandID != "" {
				patch["brandIds"] = t.BrandIDs.Toggle(brandID)
			}
			if locationID != "" {
				patch["locationIds"] = t.LocationIDs.Toggle(locationID)
			}
			if len(patch) == 0 {
				return fmt.Errorf("pass --brand-id or --location-id")
			}
			return app.Dispatcher.Update(cmd.Context(), domain.KindTheme, args[0], patch)
		},
	}
	cmd.Flags().StringVar(&brandID, "brand-id", "", "brand id to toggle")
	cmd.Flags().StringVar(&locationID, "location-id", "", "location id to toggle")
	return cmd
}

func newThemeRemoveCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a theme and its initiatives and projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.Context(), app, domain.KindTheme, args[0], yes)
		},
	}
	addYesFlag(cmd, &yes)
	return cmd
}
