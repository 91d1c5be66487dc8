package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	inboxHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	inboxCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

type inboxKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Archive key.Binding
	Convert key.Binding
	Quit    key.Binding
}

var inboxKeys = inboxKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Archive: key.NewBinding(key.WithKeys("a")),
	Convert: key.NewBinding(key.WithKeys("enter")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// inboxModel is a minimal triage view over unconverted signals: move with
// j/k, archive with a, convert with enter (conversion itself runs after the
// program exits, so the huh form does not fight bubbletea for the terminal).
type inboxModel struct {
	app      *App
	signals  []*domain.Signal
	cursor   int
	selected string
	status   string
}

func newInboxModel(app *App) *inboxModel {
	m := &inboxModel{app: app}
	m.reload()
	return m
}

func (m *inboxModel) reload() {
	m.signals = m.signals[:0]
	for _, e := range m.app.Store.List(domain.KindSignal) {
		sg := e.(*domain.Signal)
		if sg.Status == domain.SignalInbox || sg.Status == domain.SignalTriaged {
			m.signals = append(m.signals, sg)
		}
	}
	if m.cursor >= len(m.signals) {
		m.cursor = len(m.signals) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *inboxModel) Init() tea.Cmd { return nil }

func (m *inboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, inboxKeys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, inboxKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, inboxKeys.Down):
		if m.cursor < len(m.signals)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, inboxKeys.Archive):
		if len(m.signals) > 0 {
			sg := m.signals[m.cursor]
			patch := domain.Patch{"status": string(domain.SignalArchived)}
			if err := m.app.Dispatcher.Update(context.Background(), domain.KindSignal, sg.ID, patch); err != nil {
				m.status = err.Error()
			} else {
				m.status = "archived " + shortID(sg.ID)
			}
			m.reload()
		}
	case key.Matches(keyMsg, inboxKeys.Convert):
		if len(m.signals) > 0 {
			m.selected = m.signals[m.cursor].ID
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *inboxModel) View() string {
	s := inboxHeaderStyle.Render("Signal inbox") + "\n\n"
	if len(m.signals) == 0 {
		s += styleDim.Render("nothing to triage") + "\n"
	}
	for i, sg := range m.signals {
		cursor := "  "
		line := fmt.Sprintf("%s  %s  %s", shortID(sg.ID), sg.Title, styleBadge.Render("["+string(sg.Status)+"]"))
		if i == m.cursor {
			cursor = inboxCursorStyle.Render("> ")
		}
		s += cursor + line + "\n"
	}
	s += "\n" + styleDim.Render("enter convert · a archive · q quit")
	if m.status != "" {
		s += "\n" + m.status
	}
	return s
}

func newInboxCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inbox",
		Short: "Triage signals interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdinIsTerminal() {
				return fmt.Errorf("inbox needs a terminal; use 'signal list' instead")
			}
			model := newInboxModel(app)
			if _, err := tea.NewProgram(model).Run(); err != nil {
				return err
			}
			if model.selected == "" {
				return nil
			}
			themeID, err := pickTheme(app)
			if err != nil {
				return err
			}
			res, err := app.Converter.ToProject(cmd.Context(), model.selected, themeID)
			if err != nil {
				return err
			}
			fmt.Printf("created project %s from signal %s\n", shortID(res.ProjectID), shortID(model.selected))
			return nil
		},
	}
}
