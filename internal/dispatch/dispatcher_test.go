package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/northstar/internal/cascade"
	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/alexanderramin/northstar/internal/identity"
	"github.com/alexanderramin/northstar/internal/store"
	"github.com/alexanderramin/northstar/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	store    *store.Store
	primary  *testutil.FakePrimary
	signals  *testutil.FakeSignals
	journal  *testutil.MemJournal
	dispatch *Dispatcher
}

func setup(s *store.Store, opts Options) *harness {
	h := &harness{
		store:   s,
		primary: &testutil.FakePrimary{},
		signals: &testutil.FakeSignals{},
		journal: &testutil.MemJournal{},
	}
	if opts.Journal == nil {
		opts.Journal = h.journal
	}
	h.dispatch = New(s, h.primary, h.signals, identity.NewStatic("tester", "tok"), opts)
	return h
}

// TestCreate_AppliesLocallyAndShipsToPrimary verifies creation is visible in
// the mirror immediately and the full record reaches the primary store.
func TestCreate_AppliesLocallyAndShipsToPrimary(t *testing.T) {
	h := setup(store.New(), Options{})
	ctx := context.Background()

	id, err := h.dispatch.Create(ctx, domain.KindYear, &domain.Year{Title: "2027"})
	require.NoError(t, err)
	require.NotEmpty(t, id, "create must assign an id")

	e, ok := h.store.Get(domain.KindYear, id)
	require.True(t, ok, "entity must be in the mirror before the remote call lands")
	year := e.(*domain.Year)
	assert.Equal(t, "2027", year.Title)
	require.NotNil(t, year.CreatedBy)
	assert.Equal(t, "tester", *year.CreatedBy)

	h.dispatch.Wait()
	calls := h.primary.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "create", calls[0].Op)
	assert.Equal(t, domain.KindYear, calls[0].Kind)
	assert.Equal(t, id, calls[0].ID)
}

// TestCreate_RejectsSignals verifies signals cannot be created locally; they
// originate in the signal service only.
func TestCreate_RejectsSignals(t *testing.T) {
	h := setup(store.New(), Options{})

	_, err := h.dispatch.Create(context.Background(), domain.KindSignal, &domain.Signal{Title: "x"})
	assert.ErrorIs(t, err, ErrSignalCreate)
	h.dispatch.Wait()
	assert.Empty(t, h.primary.Calls())
}

// TestCreate_AliasKindStoresPhysically verifies a facelift created through
// its alias lands in the restaurant collection.
func TestCreate_AliasKindStoresPhysically(t *testing.T) {
	h := setup(store.New(), Options{})
	r := testutil.NewTestRestaurant("Refit", testutil.WithFacelift("loc-1"))

	id, err := h.dispatch.Create(context.Background(), domain.KindFacelift, r)
	require.NoError(t, err)

	_, ok := h.store.Get(domain.KindNewRestaurant, id)
	assert.True(t, ok)

	h.dispatch.Wait()
	calls := h.primary.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.KindNewRestaurant, calls[0].Kind)
}

// TestUpdate_MergesPatchAndStampsProvenance verifies the mirror holds the
// patched record with fresh update provenance while creation provenance
// survives, and the outbound patch carries the stamp.
func TestUpdate_MergesPatchAndStampsProvenance(t *testing.T) {
	theme := testutil.NewTestTheme("v1", "Old title")
	h := setup(testutil.SeedStore(theme), Options{})

	err := h.dispatch.Update(context.Background(), domain.KindTheme, theme.ID,
		domain.Patch{"title": "New title", "priority": "high"})
	require.NoError(t, err)

	e, _ := h.store.Get(domain.KindTheme, theme.ID)
	got := e.(*domain.Theme)
	assert.Equal(t, "New title", got.Title)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	require.NotNil(t, got.UpdatedBy)
	assert.Equal(t, "tester", *got.UpdatedBy)
	assert.Equal(t, theme.CreatedAt, got.CreatedAt)

	h.dispatch.Wait()
	calls := h.primary.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "update", calls[0].Op)
	assert.Equal(t, "New title", calls[0].Patch["title"])
	assert.Contains(t, calls[0].Patch, "updatedAt")
	assert.Contains(t, calls[0].Patch, "updatedBy")
}

// TestUpdate_UnknownIDFails verifies updates against missing entities fail
// synchronously with no remote traffic.
func TestUpdate_UnknownIDFails(t *testing.T) {
	h := setup(store.New(), Options{})

	err := h.dispatch.Update(context.Background(), domain.KindYear, "ghost", domain.Patch{"title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	h.dispatch.Wait()
	assert.Empty(t, h.primary.Calls())
}

// TestUpdate_SignalsRouteToSignalService verifies signal patches go to the
// signal service, never the primary store.
func TestUpdate_SignalsRouteToSignalService(t *testing.T) {
	sg := testutil.NewTestSignal("Lead")
	h := setup(testutil.SeedStore(sg), Options{})

	err := h.dispatch.Update(context.Background(), domain.KindSignal, sg.ID,
		domain.Patch{"status": "archived"})
	require.NoError(t, err)

	h.dispatch.Wait()
	assert.Empty(t, h.primary.Calls())
	calls := h.signals.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "update", calls[0].Op)
	assert.Equal(t, sg.ID, calls[0].ID)
}

// TestUpdate_ConvertedSignalIsImmutable verifies status and project linkage
// of a converted signal reject edits while other fields stay editable.
func TestUpdate_ConvertedSignalIsImmutable(t *testing.T) {
	sg := testutil.NewTestSignal("Done", testutil.WithSignalProject("p1"))
	h := setup(testutil.SeedStore(sg), Options{})
	ctx := context.Background()

	err := h.dispatch.Update(ctx, domain.KindSignal, sg.ID, domain.Patch{"status": "inbox"})
	assert.ErrorIs(t, err, ErrConvertedSignal)

	err = h.dispatch.Update(ctx, domain.KindSignal, sg.ID, domain.Patch{"projectId": "p2"})
	assert.ErrorIs(t, err, ErrConvertedSignal)

	err = h.dispatch.Update(ctx, domain.KindSignal, sg.ID, domain.Patch{"title": "Renamed"})
	assert.NoError(t, err)
}

// TestDelete_CascadesLocallyTargetOnlyRemotely verifies the whole ownership
// subtree leaves the mirror but exactly one remote delete goes out, for the
// target.
func TestDelete_CascadesLocallyTargetOnlyRemotely(t *testing.T) {
	year := testutil.NewTestYear("2027")
	vision := testutil.NewTestVision(year.ID, "V")
	theme := testutil.NewTestTheme(vision.ID, "T")
	project := testutil.NewTestProject(theme.ID, "P")
	h := setup(testutil.SeedStore(year, vision, theme, project), Options{})

	res, err := h.dispatch.Delete(context.Background(), domain.KindYear, year.ID, DeleteOptions{SkipConfirm: true})
	require.NoError(t, err)
	require.True(t, res.Proceeded)
	assert.Len(t, res.Removed, 4)

	assert.Empty(t, h.store.List(domain.KindYear))
	assert.Empty(t, h.store.List(domain.KindVision))
	assert.Empty(t, h.store.List(domain.KindTheme))
	assert.Empty(t, h.store.List(domain.KindProject))

	h.dispatch.Wait()
	calls := h.primary.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "delete", calls[0].Op)
	assert.Equal(t, year.ID, calls[0].ID)
}

// TestDelete_DeclinedConfirmationAborts verifies a declined prompt leaves the
// mirror and the wire untouched.
func TestDelete_DeclinedConfirmationAborts(t *testing.T) {
	year := testutil.NewTestYear("2027")
	confirm := func(target domain.Entity, dependents []cascade.Ref) bool { return false }
	h := setup(testutil.SeedStore(year), Options{Confirm: confirm})

	res, err := h.dispatch.Delete(context.Background(), domain.KindYear, year.ID, DeleteOptions{})
	require.NoError(t, err)
	assert.False(t, res.Proceeded)

	_, ok := h.store.Get(domain.KindYear, year.ID)
	assert.True(t, ok)
	h.dispatch.Wait()
	assert.Empty(t, h.primary.Calls())
}

// TestDelete_SignalRoutesToSignalService verifies signal deletion targets the
// owning gateway.
func TestDelete_SignalRoutesToSignalService(t *testing.T) {
	sg := testutil.NewTestSignal("Old lead")
	h := setup(testutil.SeedStore(sg), Options{})

	_, err := h.dispatch.Delete(context.Background(), domain.KindSignal, sg.ID, DeleteOptions{SkipConfirm: true})
	require.NoError(t, err)

	h.dispatch.Wait()
	assert.Empty(t, h.primary.Calls())
	calls := h.signals.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "delete", calls[0].Op)
}

// TestRemoteFailure_KeepsLocalStateAndJournals verifies the optimistic
// contract: a failing gateway never unwinds the mirror, and the failure is
// journaled and surfaced on the error channel.
func TestRemoteFailure_KeepsLocalStateAndJournals(t *testing.T) {
	h := setup(store.New(), Options{})
	h.primary.Err = errors.New("gateway down")

	id, err := h.dispatch.Create(context.Background(), domain.KindBrand, &domain.Brand{Name: "Aurora"})
	require.NoError(t, err, "local create must succeed regardless of the gateway")

	h.dispatch.Wait()

	_, ok := h.store.Get(domain.KindBrand, id)
	assert.True(t, ok, "failed remote call must not remove the local record")

	records := h.journal.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "create", records[0].Op)
	assert.Equal(t, id, records[0].EntityID)
	assert.Contains(t, records[0].Cause, "gateway down")

	select {
	case err := <-h.dispatch.Errors():
		assert.ErrorContains(t, err, "gateway down")
	default:
		t.Fatal("expected a surfaced error")
	}
}

// TestSync_HydratesFromBothGateways verifies a sync replaces the mirror with
// the primary snapshot plus the signal list.
func TestSync_HydratesFromBothGateways(t *testing.T) {
	h := setup(store.New(), Options{})
	year := testutil.NewTestYear("2027")
	h.primary.Snapshot = map[domain.Kind][]domain.Entity{
		domain.KindYear: {year},
	}
	h.signals.Signals = []*domain.Signal{testutil.NewTestSignal("Lead")}

	require.NoError(t, h.dispatch.Sync(context.Background()))

	assert.Len(t, h.store.List(domain.KindYear), 1)
	assert.Len(t, h.store.List(domain.KindSignal), 1)
}

// TestSync_ClearsCollectionsAbsentFromSnapshot verifies a kind the remote no
// longer returns is emptied locally instead of staying stale.
func TestSync_ClearsCollectionsAbsentFromSnapshot(t *testing.T) {
	brand := testutil.NewTestBrand("Aurora")
	h := setup(testutil.SeedStore(brand), Options{})
	h.primary.Snapshot = map[domain.Kind][]domain.Entity{
		domain.KindYear: {testutil.NewTestYear("2027")},
	}

	require.NoError(t, h.dispatch.Sync(context.Background()))

	assert.Len(t, h.store.List(domain.KindYear), 1)
	assert.Empty(t, h.store.List(domain.KindBrand), "absent collections must be replaced, not kept")
}

// TestRemoteFailure_OverflowIsCounted verifies failures beyond the error
// channel's capacity are counted rather than lost without trace.
func TestRemoteFailure_OverflowIsCounted(t *testing.T) {
	h := setup(store.New(), Options{})
	h.primary.Err = errors.New("gateway down")

	const total = 70
	for i := 0; i < total; i++ {
		_, err := h.dispatch.Create(context.Background(), domain.KindBrand, &domain.Brand{Name: "B"})
		require.NoError(t, err)
	}
	h.dispatch.Wait()

	buffered := len(h.dispatch.Errors())
	assert.EqualValues(t, total-buffered, h.dispatch.DroppedErrors())
	assert.Positive(t, h.dispatch.DroppedErrors())
	assert.Len(t, h.journal.Records(), total, "every failure must still reach the journal")
}

// TestSync_FailureLeavesMirrorUntouched verifies sync is all-or-nothing from
// the mirror's point of view.
func TestSync_FailureLeavesMirrorUntouched(t *testing.T) {
	year := testutil.NewTestYear("2026")
	h := setup(testutil.SeedStore(year), Options{})
	h.signals.Err = errors.New("unreachable")

	err := h.dispatch.Sync(context.Background())
	require.Error(t, err)

	_, ok := h.store.Get(domain.KindYear, year.ID)
	assert.True(t, ok)
}
