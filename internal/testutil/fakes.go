package testutil

import (
	"context"
	"sync"

	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/alexanderramin/northstar/internal/journal"
)

// GatewayCall records one invocation against a fake gateway.
type GatewayCall struct {
	Op     string
	Kind   domain.Kind
	ID     string
	Entity domain.Entity
	Patch  domain.Patch
}

// FakePrimary implements gateway.PrimaryStore. It records every call and
// returns the configured error, if any. Safe for the dispatcher's background
// goroutines.
type FakePrimary struct {
	mu       sync.Mutex
	calls    []GatewayCall
	Err      error
	Snapshot map[domain.Kind][]domain.Entity

	// Block, when set, makes Create wait until the channel closes. Lets
	// tests hold a background write open.
	Block chan struct{}
}

func (f *FakePrimary) record(c GatewayCall) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

// Calls returns a copy of the recorded calls.
func (f *FakePrimary) Calls() []GatewayCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]GatewayCall, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *FakePrimary) Create(ctx context.Context, kind domain.Kind, e domain.Entity) error {
	f.record(GatewayCall{Op: "create", Kind: kind, ID: e.EntityID(), Entity: e})
	if f.Block != nil {
		<-f.Block
	}
	return f.Err
}

func (f *FakePrimary) Update(ctx context.Context, kind domain.Kind, id string, patch domain.Patch) error {
	f.record(GatewayCall{Op: "update", Kind: kind, ID: id, Patch: patch.Clone()})
	return f.Err
}

func (f *FakePrimary) Delete(ctx context.Context, kind domain.Kind, id string) error {
	f.record(GatewayCall{Op: "delete", Kind: kind, ID: id})
	return f.Err
}

func (f *FakePrimary) FetchSnapshot(ctx context.Context) (map[domain.Kind][]domain.Entity, error) {
	f.record(GatewayCall{Op: "snapshot"})
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Snapshot, nil
}

// FakeSignals implements gateway.SignalService with the same recording
// behavior as FakePrimary.
type FakeSignals struct {
	mu      sync.Mutex
	calls   []GatewayCall
	Err     error
	Signals []*domain.Signal
}

func (f *FakeSignals) record(c GatewayCall) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

func (f *FakeSignals) Calls() []GatewayCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]GatewayCall, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *FakeSignals) List(ctx context.Context) ([]*domain.Signal, error) {
	f.record(GatewayCall{Op: "list", Kind: domain.KindSignal})
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Signals, nil
}

func (f *FakeSignals) Update(ctx context.Context, id string, patch domain.Patch) (*domain.Signal, error) {
	f.record(GatewayCall{Op: "update", Kind: domain.KindSignal, ID: id, Patch: patch.Clone()})
	if f.Err != nil {
		return nil, f.Err
	}
	for _, sg := range f.Signals {
		if sg.ID == id {
			updated := sg.Clone().(*domain.Signal)
			updated.Apply(patch)
			return updated, nil
		}
	}
	return &domain.Signal{ID: id}, nil
}

func (f *FakeSignals) Delete(ctx context.Context, id string) error {
	f.record(GatewayCall{Op: "delete", Kind: domain.KindSignal, ID: id})
	return f.Err
}

// MemJournal implements journal.Recorder in memory.
type MemJournal struct {
	mu      sync.Mutex
	records []journal.Record
}

func (m *MemJournal) Append(ctx context.Context, r *journal.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, *r)
	return nil
}

// Records returns a copy of the appended records.
func (m *MemJournal) Records() []journal.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]journal.Record, len(m.records))
	copy(out, m.records)
	return out
}
