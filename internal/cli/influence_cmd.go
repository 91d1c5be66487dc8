package cli

import (
	"fmt"

	"github.com/alexanderramin/northstar/internal/dispatch"
	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/spf13/cobra"
)

func newInfluenceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "influence",
		Short: "Manage influences",
	}
	cmd.AddCommand(
		newInfluenceAddCmd(app),
		newInfluenceListCmd(app),
		newInfluenceUpdateCmd(app),
		newInfluenceLinkCmd(app),
		newInfluenceRemoveCmd(app),
	)
	return cmd
}

func newInfluenceAddCmd(app *App) *cobra.Command {
	var title, notes, influenceType string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an influence",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := &domain.Influence{
				Title:               title,
				Notes:               notes,
				Type:                domain.InfluenceType(influenceType),
				ConnectedThemeIDs:   domain.LinkSet{},
				ConnectedProjectIDs: domain.LinkSet{},
			}
			id, err := app.Dispatcher.Create(cmd.Context(), domain.KindInfluence, f)
			if err != nil {
				return err
			}
			fmt.Printf("created influence %s\n", shortID(id))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "influence title")
	cmd.Flags().StringVar(&notes, "notes", "", "influence notes")
	cmd.Flags().StringVar(&influenceType, "type", string(domain.InfluenceExternal), "external|internal")
	cmd.MarkFlagRequired("title")
	return cmd
}

func newInfluenceListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List influences",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range app.Store.List(domain.KindInfluence) {
				f := e.(*domain.Influence)
				printRow(f.ID, f.Title, string(f.Type))
			}
			return nil
		},
	}
}

func newInfluenceUpdateCmd(app *App) *cobra.Command {
	var title, notes, influenceType string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an influence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := patchFromFlags(cmd.Flags(), map[string]*string{
				"title": &title,
				"notes": &notes,
				"type":  &influenceType,
			})
			return app.Dispatcher.Update(cmd.Context(), domain.KindInfluence, args[0], patch)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "influence title")
	cmd.Flags().StringVar(&notes, "notes", "", "influence notes")
	cmd.Flags().StringVar(&influenceType, "type", "", "external|internal")
	return cmd
}

// newInfluenceLinkCmd toggles theme/project connections. Dangling ids left by
// non-cascaded deletes simply stay toggleable; read paths filter them.
func newInfluenceLinkCmd(app *App) *cobra.Command {
	var themeID, projectID string
	cmd := &cobra.Command{
		Use:   "link <id>",
		Short: "Toggle a theme or project connection on an influence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := app.Store.Get(domain.KindInfluence, args[0])
			if !ok {
				return dispatch.ErrNotFound
			}
			f := e.(*domain.Influence)
			patch := domain.Patch{}
			if themeID != "" {
				patch["connectedThemeIds"] = f.ConnectedThemeIDs.Toggle(themeID)
			}
			if projectID != "" {
				patch["connectedProjectIds"] = f.ConnectedProjectIDs.Toggle(projectID)
			}
			if len(patch) == 0 {
				return fmt.Errorf("pass --theme-id or --project-id")
			}
			return app.Dispatcher.Update(cmd.Context(), domain.KindInfluence, args[0], patch)
		},
	}
	cmd.Flags().StringVar(&themeID, "theme-id", "", "theme id to toggle")
	cmd.Flags().StringVar(&projectID, "project-id", "", "project id to toggle")
	return cmd
}

func newInfluenceRemoveCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete an influence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.Context(), app, domain.KindInfluence, args[0], yes)
		},
	}
	addYesFlag(cmd, &yes)
	return cmd
}
