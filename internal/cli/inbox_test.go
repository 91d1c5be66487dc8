package cli

import (
	"testing"

	"github.com/alexanderramin/northstar/internal/convert"
	"github.com/alexanderramin/northstar/internal/dispatch"
	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/alexanderramin/northstar/internal/identity"
	"github.com/alexanderramin/northstar/internal/store"
	"github.com/alexanderramin/northstar/internal/teatest"
	"github.com/alexanderramin/northstar/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(s *store.Store) (*App, *testutil.FakePrimary, *testutil.FakeSignals) {
	primary := &testutil.FakePrimary{}
	signals := &testutil.FakeSignals{}
	id := identity.NewStatic("tester", "tok")
	return &App{
		Store:      s,
		Dispatcher: dispatch.New(s, primary, signals, id, dispatch.Options{}),
		Converter:  convert.New(s, primary, signals, id, convert.Options{}),
		Primary:    primary,
		Signals:    signals,
	}, primary, signals
}

// TestInbox_ListsOnlyTriagableSignals verifies converted and archived signals
// stay out of the triage view.
func TestInbox_ListsOnlyTriagableSignals(t *testing.T) {
	fresh := testutil.NewTestSignal("Fresh lead")
	triaged := testutil.NewTestSignal("Looked at", testutil.WithSignalStatus(domain.SignalTriaged))
	spent := testutil.NewTestSignal("Already a project", testutil.WithSignalProject("p1"))
	archived := testutil.NewTestSignal("Old", testutil.WithSignalStatus(domain.SignalArchived))
	app, _, _ := testApp(testutil.SeedStore(fresh, triaged, spent, archived))

	d := teatest.New(t, newInboxModel(app))
	view := d.View()

	assert.Contains(t, view, "Fresh lead")
	assert.Contains(t, view, "Looked at")
	assert.NotContains(t, view, "Already a project")
	assert.NotContains(t, view, "Old")
}

// TestInbox_ArchiveKeyUpdatesSignal verifies pressing "a" archives the signal
// under the cursor and drops it from the list.
func TestInbox_ArchiveKeyUpdatesSignal(t *testing.T) {
	sg := testutil.NewTestSignal("Noise")
	app, _, signals := testApp(testutil.SeedStore(sg))

	d := teatest.New(t, newInboxModel(app))
	d.PressKey('a')

	e, _ := app.Store.Get(domain.KindSignal, sg.ID)
	assert.Equal(t, domain.SignalArchived, e.(*domain.Signal).Status)
	assert.Contains(t, d.View(), "nothing to triage")

	app.Dispatcher.Wait()
	calls := signals.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "update", calls[0].Op)
}

// TestInbox_EnterSelectsAndQuits verifies enter records the cursor's signal
// for conversion and exits the program loop.
func TestInbox_EnterSelectsAndQuits(t *testing.T) {
	first := testutil.NewTestSignal("First")
	second := testutil.NewTestSignal("Second")
	app, _, _ := testApp(testutil.SeedStore(first, second))

	model := newInboxModel(app)
	d := teatest.New(t, model)
	d.PressDown()
	d.PressEnter()

	assert.True(t, d.Quitting)
	assert.Equal(t, second.ID, model.selected)
}

// TestInbox_QuitWithoutSelection verifies q exits with nothing selected.
func TestInbox_QuitWithoutSelection(t *testing.T) {
	app, _, _ := testApp(testutil.SeedStore(testutil.NewTestSignal("Lead")))

	model := newInboxModel(app)
	d := teatest.New(t, model)
	d.PressKey('q')

	assert.True(t, d.Quitting)
	assert.Empty(t, model.selected)
}

// TestInbox_CursorStopsAtBounds verifies navigation clamps at the list edges.
func TestInbox_CursorStopsAtBounds(t *testing.T) {
	app, _, _ := testApp(testutil.SeedStore(
		testutil.NewTestSignal("One"),
		testutil.NewTestSignal("Two"),
	))

	model := newInboxModel(app)
	d := teatest.New(t, model)

	d.PressUp()
	assert.Equal(t, 0, model.cursor)

	d.PressDown()
	d.PressDown()
	d.PressDown()
	assert.Equal(t, 1, model.cursor)
}
