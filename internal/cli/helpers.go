package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/northstar/internal/cascade"
	"github.com/alexanderramin/northstar/internal/dispatch"
	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	styleDim    = lipgloss.NewStyle().Faint(true)
	styleTitle  = lipgloss.NewStyle().Bold(true)
	styleBadge  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleDanger = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// shortID truncates a uuid for display.
func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// ConfirmDelete prompts before a destructive delete. Outside a terminal it
// refuses; scripted runs pass --yes. Wired into the dispatcher at startup.
func ConfirmDelete(target domain.Entity, dependents []cascade.Ref) bool {
	if !stdinIsTerminal() {
		fmt.Fprintln(os.Stderr, "refusing to delete without a terminal; pass --yes to confirm")
		return false
	}
	prompt := fmt.Sprintf("Delete %s %s?", target.Kind(), shortID(target.EntityID()))
	if len(dependents) > 0 {
		prompt = fmt.Sprintf("Delete %s %s and %d dependent entities?",
			target.Kind(), shortID(target.EntityID()), len(dependents))
	}
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Delete").
				Negative("Keep").
				Value(&ok),
		),
	).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return false
	}
	return ok
}

// runDelete executes a delete through the dispatcher and reports the outcome,
// including the local-only cascade removals a remote reconciliation pass
// would need to know about.
func runDelete(ctx context.Context, app *App, kind domain.Kind, id string, yes bool) error {
	res, err := app.Dispatcher.Delete(ctx, kind, id, dispatch.DeleteOptions{SkipConfirm: yes || app.SkipConfirm})
	if err != nil {
		return err
	}
	if !res.Proceeded {
		fmt.Println("aborted")
		return nil
	}
	fmt.Printf("deleted %s %s", kind, shortID(id))
	if n := len(res.Removed) - 1; n > 0 {
		fmt.Printf(" (+%d dependent entities removed locally; remote delete covers the target only)", n)
	}
	fmt.Println()
	return nil
}

// addYesFlag registers the shared --yes flag for destructive commands.
func addYesFlag(cmd *cobra.Command, yes *bool) {
	cmd.Flags().BoolVar(yes, "yes", false, "skip the confirmation prompt")
}

// patchFromFlags collects changed string flags into a patch keyed by the
// internal field names.
func patchFromFlags(flags *pflag.FlagSet, fields map[string]*string) domain.Patch {
	patch := domain.Patch{}
	for key, val := range fields {
		if flags.Changed(flagName(key)) {
			patch[key] = *val
		}
	}
	return patch
}

// flagName converts an internal camel-cased field name to its flag spelling
// (themeId -> theme-id).
func flagName(field string) string {
	var b strings.Builder
	for _, r := range field {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// printRow writes one list line: dimmed short id, title, optional badge.
func printRow(id, title, badge string) {
	line := styleDim.Render(shortID(id)) + "  " + title
	if badge != "" {
		line += "  " + styleBadge.Render("["+badge+"]")
	}
	fmt.Println(line)
}
