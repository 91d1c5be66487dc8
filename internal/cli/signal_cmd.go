package cli

import (
	"fmt"

	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newSignalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signal",
		Short: "Work the signal inbox",
	}
	cmd.AddCommand(
		newSignalListCmd(app),
		newSignalConvertCmd(app),
		newSignalArchiveCmd(app),
		newSignalRemoveCmd(app),
	)
	return cmd
}

func newSignalListCmd(app *App) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List signals",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range app.Store.List(domain.KindSignal) {
				sg := e.(*domain.Signal)
				if status != "" && string(sg.Status) != status {
					continue
				}
				badge := string(sg.Status)
				if sg.ProjectID != "" {
					badge += " → " + shortID(sg.ProjectID)
				}
				printRow(sg.ID, sg.Title, badge)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by inbox|triaged|converted|archived")
	return cmd
}

// pickTheme prompts for a theme when none was passed on the command line.
func pickTheme(app *App) (string, error) {
	themes := app.Store.List(domain.KindTheme)
	if len(themes) == 0 {
		return "", fmt.Errorf("no themes in the store; create one or run sync")
	}
	opts := make([]huh.Option[string], 0, len(themes))
	for _, e := range themes {
		t := e.(*domain.Theme)
		opts = append(opts, huh.NewOption(t.Title, t.ID))
	}
	var themeID string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme for the new project").
				Options(opts...).
				Value(&themeID),
		),
	).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return "", err
	}
	return themeID, nil
}

func newSignalConvertCmd(app *App) *cobra.Command {
	var themeID, influenceType string
	var toInfluence bool
	cmd := &cobra.Command{
		Use:   "convert <id>",
		Short: "Convert a signal into a project or an influence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if toInfluence {
				res, err := app.Converter.ToInfluence(cmd.Context(), args[0], domain.InfluenceType(influenceType))
				if err != nil {
					return err
				}
				fmt.Printf("created influence %s from signal %s\n", shortID(res.InfluenceID), shortID(args[0]))
				return nil
			}
			if themeID == "" && stdinIsTerminal() {
				picked, err := pickTheme(app)
				if err != nil {
					return err
				}
				themeID = picked
			}
			res, err := app.Converter.ToProject(cmd.Context(), args[0], themeID)
			if err != nil {
				return err
			}
			fmt.Printf("created project %s from signal %s\n", shortID(res.ProjectID), shortID(args[0]))
			return nil
		},
	}
	cmd.Flags().StringVar(&themeID, "theme-id", "", "theme for the new project")
	cmd.Flags().BoolVar(&toInfluence, "to-influence", false, "create an influence instead of a project")
	cmd.Flags().StringVar(&influenceType, "type", string(domain.InfluenceExternal), "influence type: external|internal")
	return cmd
}

func newSignalArchiveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive a signal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := domain.Patch{"status": string(domain.SignalArchived)}
			return app.Dispatcher.Update(cmd.Context(), domain.KindSignal, args[0], patch)
		},
	}
	return cmd
}

func newSignalRemoveCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a signal from the signal service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.Context(), app, domain.KindSignal, args[0], yes)
		},
	}
	addYesFlag(cmd, &yes)
	return cmd
}
