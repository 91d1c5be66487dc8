package cli

import (
	"fmt"

	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/spf13/cobra"
)

func newInitiativeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initiative",
		Short: "Manage initiatives",
	}
	cmd.AddCommand(
		newInitiativeAddCmd(app),
		newInitiativeListCmd(app),
		newInitiativeUpdateCmd(app),
		newInitiativeRemoveCmd(app),
	)
	return cmd
}

func newInitiativeAddCmd(app *App) *cobra.Command {
	var title, themeID, status string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an initiative under a theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := app.Store.Get(domain.KindTheme, themeID); !ok {
				return fmt.Errorf("theme %q not found (run sync?)", themeID)
			}
			i := &domain.Initiative{
				ThemeID: themeID,
				Title:   title,
				Status:  domain.InitiativeStatus(status),
			}
			id, err := app.Dispatcher.Create(cmd.Context(), domain.KindInitiative, i)
			if err != nil {
				return err
			}
			fmt.Printf("created initiative %s\n", shortID(id))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "initiative title")
	cmd.Flags().StringVar(&themeID, "theme-id", "", "owning theme id")
	cmd.Flags().StringVar(&status, "status", string(domain.InitiativeIdea), "idea|shaping|in_progress|done|on_hold")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("theme-id")
	return cmd
}

func newInitiativeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List initiatives",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range app.Store.List(domain.KindInitiative) {
				i := e.(*domain.Initiative)
				printRow(i.ID, i.Title, string(i.Status))
			}
			return nil
		},
	}
}

func newInitiativeUpdateCmd(app *App) *cobra.Command {
	var title, themeID, status string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an initiative",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := patchFromFlags(cmd.Flags(), map[string]*string{
				"title":   &title,
				"themeId": &themeID,
				"status":  &status,
			})
			return app.Dispatcher.Update(cmd.Context(), domain.KindInitiative, args[0], patch)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "initiative title")
	cmd.Flags().StringVar(&themeID, "theme-id", "", "owning theme id")
	cmd.Flags().StringVar(&status, "status", "", "idea|shaping|in_progress|done|on_hold")
	return cmd
}

func newInitiativeRemoveCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete an initiative (projects under it are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.Context(), app, domain.KindInitiative, args[0], yes)
		},
	}
	addYesFlag(cmd, &yes)
	return cmd
}
