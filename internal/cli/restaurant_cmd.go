package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/northstar/internal/dispatch"
	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/spf13/cobra"
)

func newRestaurantCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restaurant",
		Short: "Manage restaurant openings and facelifts",
	}
	cmd.AddCommand(
		newRestaurantOpenCmd(app),
		newRestaurantFaceliftCmd(app),
		newRestaurantListCmd(app),
		newRestaurantUpdateCmd(app),
		newRestaurantLinkCmd(app),
		newRestaurantRemoveCmd(app),
	)
	return cmd
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	return &t, nil
}

func newRestaurantOpenCmd(app *App) *cobra.Command {
	var name, phase, opening string
	var seats int
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Plan a new restaurant opening",
		RunE: func(cmd *cobra.Command, args []string) error {
			openingDate, err := parseDate(opening)
			if err != nil {
				return err
			}
			r := &domain.NewRestaurant{
				Category:    domain.CategoryNew,
				Name:        name,
				Phase:       domain.RestaurantPhase(phase),
				OpeningDate: openingDate,
				Seats:       seats,
				BrandIDs:    domain.LinkSet{},
			}
			if !domain.ValidPhase(r.Category, r.Phase) {
				return fmt.Errorf("phase %q is not valid for a new opening", phase)
			}
			id, err := app.Dispatcher.Create(cmd.Context(), domain.KindRestaurantOpening, r)
			if err != nil {
				return err
			}
			fmt.Printf("created opening %s\n", shortID(id))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "restaurant name")
	cmd.Flags().StringVar(&phase, "phase", string(domain.PhaseScouting), "scouting|lease|build_out|opening")
	cmd.Flags().StringVar(&opening, "opening-date", "", "planned opening date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&seats, "seats", 0, "planned seat count")
	cmd.MarkFlagRequired("name")
	return cmd
}

func newRestaurantFaceliftCmd(app *App) *cobra.Command {
	var name, phase, locationID, closure, reopening string
	cmd := &cobra.Command{
		Use:   "facelift",
		Short: "Plan a facelift of an existing location",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := app.Store.Get(domain.KindLocation, locationID); !ok {
				return fmt.Errorf("location %q not found (run sync?)", locationID)
			}
			closureDate, err := parseDate(closure)
			if err != nil {
				return err
			}
			reopeningDate, err := parseDate(reopening)
			if err != nil {
				return err
			}
			r := &domain.NewRestaurant{
				Category:      domain.CategoryFacelift,
				Name:          name,
				Phase:         domain.RestaurantPhase(phase),
				LocationID:    &locationID,
				ClosureDate:   closureDate,
				ReopeningDate: reopeningDate,
				BrandIDs:      domain.LinkSet{},
			}
			if !domain.ValidPhase(r.Category, r.Phase) {
				return fmt.Errorf("phase %q is not valid for a facelift", phase)
			}
			id, err := app.Dispatcher.Create(cmd.Context(), domain.KindFacelift, r)
			if err != nil {
				return err
			}
			fmt.Printf("created facelift %s\n", shortID(id))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "restaurant name")
	cmd.Flags().StringVar(&phase, "phase", string(domain.PhaseClosure), "closure|reconstruction|reopening")
	cmd.Flags().StringVar(&locationID, "location-id", "", "location being reworked")
	cmd.Flags().StringVar(&closure, "closure-date", "", "closure date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&reopening, "reopening-date", "", "reopening date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("location-id")
	return cmd
}

func newRestaurantListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List restaurant openings and facelifts",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range app.Store.List(domain.KindNewRestaurant) {
				r := e.(*domain.NewRestaurant)
				printRow(r.ID, r.Name, fmt.Sprintf("%s, %s", r.Category, r.Phase))
			}
			return nil
		},
	}
}

func newRestaurantUpdateCmd(app *App) *cobra.Command {
	var name, phase string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a restaurant plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := app.Store.Get(domain.KindNewRestaurant, args[0])
			if !ok {
				return dispatch.ErrNotFound
			}
			r := e.(*domain.NewRestaurant)
			patch := patchFromFlags(cmd.Flags(), map[string]*string{"name": &name})
			if cmd.Flags().Changed("phase") {
				if !domain.ValidPhase(r.Category, domain.RestaurantPhase(phase)) {
					return fmt.Errorf("phase %q is not valid for category %q", phase, r.Category)
				}
				patch["phase"] = phase
			}
			return app.Dispatcher.Update(cmd.Context(), domain.KindNewRestaurant, args[0], patch)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "restaurant name")
	cmd.Flags().StringVar(&phase, "phase", "", "category-scoped phase")
	return cmd
}

func newRestaurantLinkCmd(app *App) *cobra.Command {
	var brandID string
	cmd := &cobra.Command{
		Use:   "link <id>",
		Short: "Toggle a brand link on a restaurant plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := app.Store.Get(domain.KindNewRestaurant, args[0])
			if !ok {
				return dispatch.ErrNotFound
			}
			r := e.(*domain.NewRestaurant)
			patch := domain.Patch{"brandIds": r.BrandIDs.Toggle(brandID)}
			return app.Dispatcher.Update(cmd.Context(), domain.KindNewRestaurant, args[0], patch)
		},
	}
	cmd.Flags().StringVar(&brandID, "brand-id", "", "brand id to toggle")
	cmd.MarkFlagRequired("brand-id")
	return cmd
}

func newRestaurantRemoveCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a restaurant plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.Context(), app, domain.KindNewRestaurant, args[0], yes)
		},
	}
	addYesFlag(cmd, &yes)
	return cmd
}
