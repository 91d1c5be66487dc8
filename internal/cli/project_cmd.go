package cli

import (
	"fmt"

	"github.com/alexanderramin/northstar/internal/dispatch"
	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}
	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectUpdateCmd(app),
		newProjectLinkCmd(app),
		newProjectRemoveCmd(app),
	)
	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var title, notes, themeID, initiativeID, status string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a project under a theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := app.Store.Get(domain.KindTheme, themeID); !ok {
				return fmt.Errorf("theme %q not found (run sync?)", themeID)
			}
			p := &domain.Project{
				ThemeID:  themeID,
				Title:    title,
				Notes:    notes,
				Status:   domain.ProjectStatus(status),
				BrandIDs: domain.LinkSet{},
			}
			if initiativeID != "" {
				if _, ok := app.Store.Get(domain.KindInitiative, initiativeID); !ok {
					return fmt.Errorf("initiative %q not found", initiativeID)
				}
				p.InitiativeID = &initiativeID
			}
			id, err := app.Dispatcher.Create(cmd.Context(), domain.KindProject, p)
			if err != nil {
				return err
			}
			fmt.Printf("created project %s\n", shortID(id))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "project title")
	cmd.Flags().StringVar(&notes, "notes", "", "project notes")
	cmd.Flags().StringVar(&themeID, "theme-id", "", "owning theme id")
	cmd.Flags().StringVar(&initiativeID, "initiative-id", "", "optional owning initiative id")
	cmd.Flags().StringVar(&status, "status", string(domain.ProjectIdea), "idea|in_prep|running|done")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("theme-id")
	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range app.Store.List(domain.KindProject) {
				p := e.(*domain.Project)
				badge := string(p.Status)
				if p.SignalID != "" {
					badge += ", from signal"
				}
				printRow(p.ID, p.Title, badge)
			}
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var title, notes, themeID, initiativeID, status string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := patchFromFlags(cmd.Flags(), map[string]*string{
				"title":   &title,
				"notes":   &notes,
				"themeId": &themeID,
				"status":  &status,
			})
			if cmd.Flags().Changed("initiative-id") {
				if initiativeID == "" {
					patch["initiativeId"] = nil
				} else {
					patch["initiativeId"] = initiativeID
				}
			}
			return app.Dispatcher.Update(cmd.Context(), domain.KindProject, args[0], patch)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "project title")
	cmd.Flags().StringVar(&notes, "notes", "", "project notes")
	cmd.Flags().StringVar(&themeID, "theme-id", "", "owning theme id")
	cmd.Flags().StringVar(&initiativeID, "initiative-id", "", "owning initiative id (empty clears it)")
	cmd.Flags().StringVar(&status, "status", "", "idea|in_prep|running|done")
	return cmd
}

func newProjectLinkCmd(app *App) *cobra.Command {
	var brandID string
	cmd := &cobra.Command{
		Use:   "link <id>",
		Short: "Toggle a brand link on a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := app.Store.Get(domain.KindProject, args[0])
			if !ok {
				return dispatch.ErrNotFound
			}
			p := e.(*domain.Project)
			patch := domain.Patch{"brandIds": p.BrandIDs.Toggle(brandID)}
			return app.Dispatcher.Update(cmd.Context(), domain.KindProject, args[0], patch)
		},
	}
	cmd.Flags().StringVar(&brandID, "brand-id", "", "brand id to toggle")
	cmd.MarkFlagRequired("brand-id")
	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.Context(), app, domain.KindProject, args[0], yes)
		},
	}
	addYesFlag(cmd, &yes)
	return cmd
}
