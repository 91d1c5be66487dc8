// Package dispatch is the single path through which create/update/delete
// intents reach both the entity store and the remote gateways. Every mutation
// is applied to the local mirror synchronously, then shipped to the owning
// gateway in the background. Remote failures are logged, journaled, and
// surfaced on an error channel; they never unwind the local state.
package dispatch

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/alexanderramin/northstar/internal/audit"
	"github.com/alexanderramin/northstar/internal/cascade"
	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/alexanderramin/northstar/internal/gateway"
	"github.com/alexanderramin/northstar/internal/identity"
	"github.com/alexanderramin/northstar/internal/journal"
	"github.com/alexanderramin/northstar/internal/store"
	"github.com/google/uuid"
)

// Policy names the reconciliation stance of the dispatcher.
type Policy string

// OptimisticNoRollback: local mutations are durable for the session whether
// or not the remote call lands. Stricter consistency would need a reverting
// transition in the mutation state machine; this dispatcher has none.
const OptimisticNoRollback Policy = "optimistic_no_rollback"

// ReconciliationPolicy is the fixed policy of this implementation.
const ReconciliationPolicy = OptimisticNoRollback

// ConfirmFunc asks the user to confirm a destructive operation. It receives
// the deletion target and the cascade set that would go with it.
type ConfirmFunc func(target domain.Entity, dependents []cascade.Ref) bool

// DeleteOptions modifies delete behavior.
type DeleteOptions struct {
	// SkipConfirm bypasses the interactive confirmation.
	SkipConfirm bool
}

// DeleteResult reports what a delete did. Removed lists the target plus every
// cascade-dependent entity taken out of the mirror; only the target gets a
// remote delete, so the tail of Removed is what a reconciliation pass would
// need to clean up remotely.
type DeleteResult struct {
	Proceeded bool
	Removed   []cascade.Ref
}

// Options carries the optional collaborators of a Dispatcher.
type Options struct {
	Journal  journal.Recorder
	Observer MutationObserver
	Confirm  ConfirmFunc
	Clock    audit.Clock
}

type Dispatcher struct {
	store    *store.Store
	primary  gateway.PrimaryStore
	signals  gateway.SignalService
	id       identity.Provider
	journal  journal.Recorder
	observer MutationObserver
	confirm  ConfirmFunc
	clock    audit.Clock

	errs    chan error
	dropped atomic.Uint64
	wg      sync.WaitGroup
}

func New(s *store.Store, primary gateway.PrimaryStore, signals gateway.SignalService, id identity.Provider, opts Options) *Dispatcher {
	d := &Dispatcher{
		store:    s,
		primary:  primary,
		signals:  signals,
		id:       id,
		journal:  opts.Journal,
		observer: opts.Observer,
		confirm:  opts.Confirm,
		clock:    opts.Clock,
		errs:     make(chan error, 64),
	}
	if d.journal == nil {
		d.journal = journal.Noop{}
	}
	if d.observer == nil {
		d.observer = NoopMutationObserver{}
	}
	if d.clock == nil {
		d.clock = audit.UTCNow
	}
	return d
}

// Errors surfaces remote-call failures. The channel is buffered and never
// blocks the background senders; full detail also reaches the observer and
// the journal.
func (d *Dispatcher) Errors() <-chan error { return d.errs }

// DroppedErrors reports how many failures could not be buffered on the error
// channel. Those failures still reached the observer and the journal; the
// count lets a shutdown drain report that its error listing is incomplete.
func (d *Dispatcher) DroppedErrors() uint64 { return d.dropped.Load() }

// Wait blocks until all in-flight remote calls have finished. Used at
// shutdown and in tests; the calls themselves are not cancellable.
func (d *Dispatcher) Wait() { d.wg.Wait() }

// Create generates an id, stamps creation provenance, inserts into the
// mirror, and ships the record to the primary store in the background.
func (d *Dispatcher) Create(ctx context.Context, kind domain.Kind, e domain.Entity) (string, error) {
	phys := domain.ResolveKind(kind)
	if !domain.ValidKind(phys) {
		return "", ErrUnknownKind
	}
	if phys == domain.KindSignal {
		return "", ErrSignalCreate
	}
	d.observe(MutationEvent{Op: "create", Kind: phys, State: StateRequested})

	if e.EntityID() == "" {
		e.SetID(uuid.New().String())
	}
	*e.Meta() = audit.StampCreate(d.id.Identity().ActorID, d.clock)

	coll := d.store.List(phys)
	d.store.ReplaceCollection(phys, append(coll, e))
	d.observe(MutationEvent{Op: "create", Kind: phys, EntityID: e.EntityID(), State: StateApplied})

	payload, _ := json.Marshal(e)
	d.dispatchRemote("create", gateway.GatewayPrimary, phys, e.EntityID(), payload, func(ctx context.Context) error {
		return d.primary.Create(ctx, phys, e)
	})
	return e.EntityID(), nil
}

// Update merges patch plus an update stamp into the mirrored record, then
// ships the patch to the gateway that owns the kind. Signals route to the
// signal service; everything else goes to the primary store.
func (d *Dispatcher) Update(ctx context.Context, kind domain.Kind, id string, patch domain.Patch) error {
	phys := domain.ResolveKind(kind)
	if !domain.ValidKind(phys) {
		return ErrUnknownKind
	}
	current, ok := d.store.Get(phys, id)
	if !ok {
		return ErrNotFound
	}
	if sg, isSignal := current.(*domain.Signal); isSignal && sg.Converted() {
		if _, has := patch["status"]; has {
			return ErrConvertedSignal
		}
		if _, has := patch["projectId"]; has {
			return ErrConvertedSignal
		}
	}
	d.observe(MutationEvent{Op: "update", Kind: phys, EntityID: id, State: StateRequested})

	updated := current.Clone()
	updated.Apply(patch)
	*updated.Meta() = audit.StampUpdate(d.id.Identity().ActorID, *current.Meta(), d.clock)
	d.replace(phys, updated)
	d.observe(MutationEvent{Op: "update", Kind: phys, EntityID: id, State: StateApplied})

	wirePatch := patch.Clone()
	wirePatch["updatedBy"] = updated.Meta().UpdatedBy
	wirePatch["updatedAt"] = updated.Meta().UpdatedAt

	payload, _ := json.Marshal(wirePatch)
	if phys == domain.KindSignal {
		d.dispatchRemote("update", gateway.GatewaySignals, phys, id, payload, func(ctx context.Context) error {
			_, err := d.signals.Update(ctx, id, wirePatch)
			return err
		})
		return nil
	}
	d.dispatchRemote("update", gateway.GatewayPrimary, phys, id, payload, func(ctx context.Context) error {
		return d.primary.Update(ctx, phys, id, wirePatch)
	})
	return nil
}

// Delete removes the target and its full cascade set from the mirror, then
// issues a single remote delete for the target only. Descendants are not
// deleted remotely under the current policy; DeleteResult.Removed documents
// the gap for manual reconciliation.
func (d *Dispatcher) Delete(ctx context.Context, kind domain.Kind, id string, opts DeleteOptions) (*DeleteResult, error) {
	phys := domain.ResolveKind(kind)
	if !domain.ValidKind(phys) {
		return nil, ErrUnknownKind
	}
	target, ok := d.store.Get(phys, id)
	if !ok {
		return nil, ErrNotFound
	}
	dependents := cascade.Dependents(d.store, phys, id)

	if !opts.SkipConfirm && d.confirm != nil && !d.confirm(target, dependents) {
		return &DeleteResult{Proceeded: false}, nil
	}
	d.observe(MutationEvent{Op: "delete", Kind: phys, EntityID: id, State: StateRequested})

	removed := append([]cascade.Ref{{Kind: phys, ID: id}}, dependents...)
	byKind := make(map[domain.Kind]map[string]bool)
	for _, ref := range removed {
		if byKind[ref.Kind] == nil {
			byKind[ref.Kind] = make(map[string]bool)
		}
		byKind[ref.Kind][ref.ID] = true
	}
	for k, ids := range byKind {
		coll := d.store.List(k)
		kept := make([]domain.Entity, 0, len(coll))
		for _, e := range coll {
			if !ids[e.EntityID()] {
				kept = append(kept, e)
			}
		}
		d.store.ReplaceCollection(k, kept)
	}
	d.observe(MutationEvent{Op: "delete", Kind: phys, EntityID: id, State: StateApplied})

	if phys == domain.KindSignal {
		d.dispatchRemote("delete", gateway.GatewaySignals, phys, id, nil, func(ctx context.Context) error {
			return d.signals.Delete(ctx, id)
		})
	} else {
		d.dispatchRemote("delete", gateway.GatewayPrimary, phys, id, nil, func(ctx context.Context) error {
			return d.primary.Delete(ctx, phys, id)
		})
	}
	return &DeleteResult{Proceeded: true, Removed: removed}, nil
}

// Sync hydrates the mirror from both gateways. Unlike mutations this is a
// synchronous, fallible operation: a failed sync leaves the mirror untouched.
func (d *Dispatcher) Sync(ctx context.Context) error {
	snapshot, err := d.primary.FetchSnapshot(ctx)
	if err != nil {
		return err
	}
	sigs, err := d.signals.List(ctx)
	if err != nil {
		return err
	}
	// Replace every collection, not just those the snapshot mentions: a kind
	// the remote emptied or stopped returning must not stay stale locally.
	for _, kind := range domain.AllKinds {
		if kind == domain.KindSignal {
			continue
		}
		d.store.ReplaceCollection(kind, snapshot[kind])
	}
	coll := make([]domain.Entity, len(sigs))
	for i, sg := range sigs {
		coll[i] = sg
	}
	d.store.ReplaceCollection(domain.KindSignal, coll)
	return nil
}

// replace swaps the entity with matching id into kind's collection.
func (d *Dispatcher) replace(kind domain.Kind, e domain.Entity) {
	coll := d.store.List(kind)
	for i, existing := range coll {
		if existing.EntityID() == e.EntityID() {
			coll[i] = e
			break
		}
	}
	d.store.ReplaceCollection(kind, coll)
}

// dispatchRemote runs one gateway call in the background. Calls run on a
// fresh context: a remote write started before a local delete still runs to
// completion, a known and accepted race.
func (d *Dispatcher) dispatchRemote(op, gatewayName string, kind domain.Kind, id string, payload []byte, call func(ctx context.Context) error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx := context.Background()
		err := call(ctx)
		if err == nil {
			d.observe(MutationEvent{Op: op, Gateway: gatewayName, Kind: kind, EntityID: id, State: StateConfirmed})
			return
		}
		d.observe(MutationEvent{Op: op, Gateway: gatewayName, Kind: kind, EntityID: id, State: StateFailed, Err: err})
		_ = d.journal.Append(ctx, &journal.Record{
			Gateway:  gatewayName,
			Op:       op,
			Kind:     string(kind),
			EntityID: id,
			Payload:  payload,
			Cause:    err.Error(),
		})
		select {
		case d.errs <- err:
		default:
			d.dropped.Add(1)
		}
	}()
}

func (d *Dispatcher) observe(event MutationEvent) {
	event.At = d.clock()
	d.observer.ObserveMutation(event)
}
