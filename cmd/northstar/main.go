package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/northstar/internal/cli"
	"github.com/alexanderramin/northstar/internal/config"
	"github.com/alexanderramin/northstar/internal/convert"
	"github.com/alexanderramin/northstar/internal/dispatch"
	"github.com/alexanderramin/northstar/internal/gateway"
	"github.com/alexanderramin/northstar/internal/identity"
	"github.com/alexanderramin/northstar/internal/journal"
	"github.com/alexanderramin/northstar/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := os.Getenv("NORTHSTAR_CONFIG")
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	id := identity.NewStatic(cfg.ActorID, cfg.Token)
	primary := gateway.NewPrimaryClient(cfg.PrimaryGateway(), id)
	signals := gateway.NewSignalClient(cfg.SignalGateway(), id)

	// Journal failed gateway calls for manual retry; empty path disables it.
	var rec journal.Recorder = journal.Noop{}
	var jrn *journal.Journal
	if cfg.JournalPath != "" {
		jrn, err = journal.Open(cfg.JournalPath)
		if err != nil {
			return fmt.Errorf("opening journal: %w", err)
		}
		defer jrn.Close()
		rec = jrn
	}

	var observer dispatch.MutationObserver = dispatch.NoopMutationObserver{}
	if cfg.LogMutations {
		observer = dispatch.NewLogMutationObserver(os.Stderr)
	}

	st := store.New()
	dispatcher := dispatch.New(st, primary, signals, id, dispatch.Options{
		Journal:  rec,
		Observer: observer,
		Confirm:  cli.ConfirmDelete,
	})
	converter := convert.New(st, primary, signals, id, convert.Options{
		Journal:  rec,
		Observer: observer,
	})

	app := &cli.App{
		Store:       st,
		Dispatcher:  dispatcher,
		Converter:   converter,
		Journal:     jrn,
		Primary:     primary,
		Signals:     signals,
		SkipConfirm: cfg.SkipConfirm,
	}

	rootCmd := cli.NewRootCmd(app)
	runErr := rootCmd.Execute()

	// Let in-flight gateway calls land before the process exits, then drain
	// their failures so the user sees them even without the journal.
	dispatcher.Wait()
	converter.Wait()
	drain(dispatcher.Errors())
	drain(converter.Errors())
	if n := dispatcher.DroppedErrors(); n > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d more remote failures were not buffered; see the journal\n", n)
	}

	return runErr
}

func drain(errs <-chan error) {
	for {
		select {
		case err := <-errs:
			fmt.Fprintf(os.Stderr, "Warning: remote call failed: %v\n", err)
		default:
			return
		}
	}
}
