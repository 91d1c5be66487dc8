package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/northstar/internal/convert"
	"github.com/alexanderramin/northstar/internal/dispatch"
	"github.com/alexanderramin/northstar/internal/gateway"
	"github.com/alexanderramin/northstar/internal/journal"
	"github.com/alexanderramin/northstar/internal/store"
	"github.com/spf13/cobra"
)

// App holds the wired core components the CLI commands operate on.
type App struct {
	Store      *store.Store
	Dispatcher *dispatch.Dispatcher
	Converter  *convert.Converter
	Journal    *journal.Journal // nil when no journal is configured
	Primary    gateway.PrimaryStore
	Signals    gateway.SignalService

	// SkipConfirm answers destructive confirmations with yes (config,
	// NORTHSTAR_SKIP_CONFIRM, or --yes).
	SkipConfirm bool
}

// NewRootCmd creates the top-level "northstar" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "northstar",
		Short:         "Strategy planner with an optimistic mirror of two remote stores",
		SilenceUsage:  true,
		SilenceErrors: true,
		// The mirror is process-local, so every command that reads or
		// mutates entities starts from a fresh hydration. Best effort: an
		// unreachable gateway degrades to the per-command guards.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsMirror(cmd) {
				return nil
			}
			if err := app.Dispatcher.Sync(cmd.Context()); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not hydrate from remote stores: %v\n", err)
			}
			return nil
		},
	}

	root.AddCommand(
		newSyncCmd(app),
		newYearCmd(app),
		newVisionCmd(app),
		newThemeCmd(app),
		newInitiativeCmd(app),
		newProjectCmd(app),
		newBrandCmd(app),
		newLocationCmd(app),
		newRestaurantCmd(app),
		newInfluenceCmd(app),
		newSignalCmd(app),
		newInboxCmd(app),
		newTreeCmd(app),
		newJournalCmd(app),
	)

	return root
}

// needsMirror reports whether the command operates on mirrored entities.
// sync hydrates explicitly, journal talks straight to the gateways, and
// help/completion touch no data at all.
func needsMirror(cmd *cobra.Command) bool {
	if !cmd.HasParent() {
		return false
	}
	for c := cmd; c.HasParent(); c = c.Parent() {
		switch c.Name() {
		case "sync", "journal", "help", "completion":
			return false
		}
	}
	return true
}
