package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/alexanderramin/northstar/internal/gateway"
	"github.com/alexanderramin/northstar/internal/journal"
	"github.com/spf13/cobra"
)

func newJournalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect and retry failed gateway calls",
	}
	cmd.AddCommand(
		newJournalListCmd(app),
		newJournalRetryCmd(app),
		newJournalClearCmd(app),
	)
	return cmd
}

func requireJournal(app *App) error {
	if app.Journal == nil {
		return fmt.Errorf("no journal configured (set journalPath or NORTHSTAR_JOURNAL)")
	}
	return nil
}

func newJournalListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List failed gateway calls",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireJournal(app); err != nil {
				return err
			}
			records, err := app.Journal.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("journal is empty")
				return nil
			}
			for _, r := range records {
				fmt.Printf("%s #%d  %s %s %s/%s\n  %s\n",
					r.CreatedAt.Format("2006-01-02 15:04:05"),
					r.ID, r.Gateway, r.Op, r.Kind, shortID(r.EntityID),
					styleDanger.Render(r.Cause))
			}
			return nil
		},
	}
}

// retryRecord re-issues the journaled call against the owning gateway.
func retryRecord(app *App, cmd *cobra.Command, r *journal.Record) error {
	ctx := cmd.Context()
	kind := domain.Kind(r.Kind)
	switch {
	case r.Gateway == gateway.GatewayPrimary && r.Op == "create":
		e, ok := domain.NewEntity(kind)
		if !ok {
			return fmt.Errorf("journal record %d has unknown kind %q", r.ID, r.Kind)
		}
		if err := json.Unmarshal(r.Payload, e); err != nil {
			return fmt.Errorf("decoding journaled payload: %w", err)
		}
		return app.Primary.Create(ctx, kind, e)
	case r.Gateway == gateway.GatewayPrimary && r.Op == "update":
		var patch domain.Patch
		if err := json.Unmarshal(r.Payload, &patch); err != nil {
			return fmt.Errorf("decoding journaled payload: %w", err)
		}
		return app.Primary.Update(ctx, kind, r.EntityID, patch)
	case r.Gateway == gateway.GatewayPrimary && r.Op == "delete":
		return app.Primary.Delete(ctx, kind, r.EntityID)
	case r.Gateway == gateway.GatewaySignals && r.Op == "update":
		var patch domain.Patch
		if err := json.Unmarshal(r.Payload, &patch); err != nil {
			return fmt.Errorf("decoding journaled payload: %w", err)
		}
		_, err := app.Signals.Update(ctx, r.EntityID, patch)
		return err
	case r.Gateway == gateway.GatewaySignals && r.Op == "delete":
		return app.Signals.Delete(ctx, r.EntityID)
	}
	return fmt.Errorf("journal record %d: cannot retry %s %s", r.ID, r.Gateway, r.Op)
}

func newJournalRetryCmd(app *App) *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "retry",
		Short: "Re-issue a failed gateway call",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireJournal(app); err != nil {
				return err
			}
			r, err := app.Journal.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := retryRecord(app, cmd, r); err != nil {
				return fmt.Errorf("retry failed: %w", err)
			}
			if err := app.Journal.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("retried #%d successfully\n", id)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "journal record id")
	cmd.MarkFlagRequired("id")
	return cmd
}

func newJournalClearCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop all journal records",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireJournal(app); err != nil {
				return err
			}
			if !yes && !app.SkipConfirm {
				return fmt.Errorf("pass --yes to clear the journal")
			}
			return app.Journal.Clear(cmd.Context())
		},
	}
	addYesFlag(cmd, &yes)
	return cmd
}
