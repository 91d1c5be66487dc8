// Package convert materializes first-class planning entities from inbox
// signals. A conversion spans both backends: a create on the primary store
// and an update on the signal service. From the user's perspective it is
// atomic (both mirror updates land in one synchronous step), but the two
// remote writes are sequenced, independently fallible, and uncompensated: a
// failed signal update after a successful project create leaves the backends
// inconsistent until someone retries from the journal.
package convert

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/alexanderramin/northstar/internal/audit"
	"github.com/alexanderramin/northstar/internal/dispatch"
	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/alexanderramin/northstar/internal/gateway"
	"github.com/alexanderramin/northstar/internal/identity"
	"github.com/alexanderramin/northstar/internal/journal"
	"github.com/alexanderramin/northstar/internal/store"
	"github.com/google/uuid"
)

var (
	// ErrSignalNotFound indicates the signal is absent from the mirror.
	ErrSignalNotFound = errors.New("signal not found in store")

	// ErrThemeRequired indicates a project conversion without a selected
	// theme. Rejected before any mutation.
	ErrThemeRequired = errors.New("a theme must be selected before converting to a project")

	// ErrAlreadyConverted indicates the signal has produced an entity
	// already. Further edits go through direct field updates, never through
	// this workflow again.
	ErrAlreadyConverted = errors.New("signal is already converted")

	// ErrConversionInFlight indicates a concurrent conversion attempt on the
	// same signal. The second attempt is rejected, not queued.
	ErrConversionInFlight = errors.New("a conversion for this signal is already in flight")

	// ErrInvalidInfluenceType indicates a type outside {external, internal}.
	ErrInvalidInfluenceType = errors.New("influence type must be external or internal")
)

// ProjectResult reports a signal→project conversion: the new project's id and
// the exact patch applied to the signal, so callers can reconcile UI state.
type ProjectResult struct {
	ProjectID   string
	SignalPatch domain.Patch
}

// InfluenceResult reports a signal→influence conversion.
type InfluenceResult struct {
	InfluenceID string
	SignalPatch domain.Patch
}

// Options carries the optional collaborators of a Converter.
type Options struct {
	Journal  journal.Recorder
	Observer dispatch.MutationObserver
	Clock    audit.Clock
}

type Converter struct {
	store    *store.Store
	primary  gateway.PrimaryStore
	signals  gateway.SignalService
	id       identity.Provider
	journal  journal.Recorder
	observer dispatch.MutationObserver
	clock    audit.Clock

	mu       sync.Mutex
	inflight map[string]bool

	errs chan error
	wg   sync.WaitGroup
}

func New(s *store.Store, primary gateway.PrimaryStore, signals gateway.SignalService, id identity.Provider, opts Options) *Converter {
	c := &Converter{
		store:    s,
		primary:  primary,
		signals:  signals,
		id:       id,
		journal:  opts.Journal,
		observer: opts.Observer,
		clock:    opts.Clock,
		inflight: make(map[string]bool),
		errs:     make(chan error, 16),
	}
	if c.journal == nil {
		c.journal = journal.Noop{}
	}
	if c.observer == nil {
		c.observer = dispatch.NoopMutationObserver{}
	}
	if c.clock == nil {
		c.clock = audit.UTCNow
	}
	return c
}

// Errors surfaces remote-call failures from background conversion writes.
func (c *Converter) Errors() <-chan error { return c.errs }

// Wait blocks until all in-flight remote writes have finished.
func (c *Converter) Wait() { c.wg.Wait() }

// ToProject converts a signal into a project under the given theme. The
// project inherits the signal's title and body, starts at status idea with
// empty link sets, and records the signal as provenance. The signal's theme
// set gains themeId (no duplicate), its status becomes converted, and its
// projectId points at the new project.
func (c *Converter) ToProject(ctx context.Context, signalID, themeID string) (*ProjectResult, error) {
	if themeID == "" {
		return nil, ErrThemeRequired
	}
	sg, err := c.acquire(signalID)
	if err != nil {
		return nil, err
	}

	actor := c.id.Identity().ActorID
	project := &domain.Project{
		ID:       uuid.New().String(),
		ThemeID:  themeID,
		Title:    sg.Title,
		Notes:    sg.Body,
		Status:   domain.ProjectIdea,
		BrandIDs: domain.LinkSet{},
		SignalID: sg.ID,
	}
	project.Audit = audit.StampCreate(actor, c.clock)

	signalPatch := domain.Patch{
		"status":    string(domain.SignalConverted),
		"projectId": project.ID,
		"themeIds":  sg.ThemeIDs.Add(themeID),
	}
	c.applyLocal(project, sg, signalPatch, actor)

	c.runRemote(sg.ID, func(ctx context.Context) {
		c.remoteCreate(ctx, domain.KindProject, project)
		c.remoteSignalUpdate(ctx, sg.ID, signalPatch)
	})
	return &ProjectResult{ProjectID: project.ID, SignalPatch: signalPatch}, nil
}

// ToInfluence creates an influence from a signal and links the signal as one
// of its contributing signals via the signal's influence set. The signal's
// status moves to triaged, not converted: an influence origin does not spend
// the signal's one project conversion.
func (c *Converter) ToInfluence(ctx context.Context, signalID string, influenceType domain.InfluenceType) (*InfluenceResult, error) {
	if influenceType != domain.InfluenceExternal && influenceType != domain.InfluenceInternal {
		return nil, ErrInvalidInfluenceType
	}
	sg, err := c.acquire(signalID)
	if err != nil {
		return nil, err
	}

	actor := c.id.Identity().ActorID
	influence := &domain.Influence{
		ID:                  uuid.New().String(),
		Title:               sg.Title,
		Type:                influenceType,
		Notes:               sg.Body,
		ConnectedThemeIDs:   sg.ThemeIDs.Clone(),
		ConnectedProjectIDs: domain.LinkSet{},
	}
	influence.Audit = audit.StampCreate(actor, c.clock)

	signalPatch := domain.Patch{
		"status":       string(domain.SignalTriaged),
		"influenceIds": sg.InfluenceIDs.Add(influence.ID),
	}
	c.applyLocal(influence, sg, signalPatch, actor)

	c.runRemote(sg.ID, func(ctx context.Context) {
		c.remoteCreate(ctx, domain.KindInfluence, influence)
		c.remoteSignalUpdate(ctx, sg.ID, signalPatch)
	})
	return &InfluenceResult{InfluenceID: influence.ID, SignalPatch: signalPatch}, nil
}

// acquire validates the signal and claims the single-flight slot for it.
func (c *Converter) acquire(signalID string) (*domain.Signal, error) {
	e, ok := c.store.Get(domain.KindSignal, signalID)
	if !ok {
		return nil, ErrSignalNotFound
	}
	sg := e.(*domain.Signal)
	if sg.Converted() {
		return nil, ErrAlreadyConverted
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight[signalID] {
		return nil, ErrConversionInFlight
	}
	c.inflight[signalID] = true
	return sg, nil
}

// applyLocal inserts the new entity and patches the signal in one synchronous
// step, so the mirror never shows a half-applied conversion.
func (c *Converter) applyLocal(created domain.Entity, sg *domain.Signal, signalPatch domain.Patch, actor *string) {
	kind := created.Kind()
	coll := c.store.List(kind)
	c.store.ReplaceCollection(kind, append(coll, created))

	updated := sg.Clone()
	updated.Apply(signalPatch)
	*updated.Meta() = audit.StampUpdate(actor, sg.Audit, c.clock)

	sigs := c.store.List(domain.KindSignal)
	for i, e := range sigs {
		if e.EntityID() == sg.ID {
			sigs[i] = updated
			break
		}
	}
	c.store.ReplaceCollection(domain.KindSignal, sigs)

	c.observe("convert", "", kind, created.EntityID(), dispatch.StateApplied, nil)
}

// runRemote executes the two-backend write sequence in the background and
// releases the single-flight slot when both attempts are done.
func (c *Converter) runRemote(signalID string, fn func(ctx context.Context)) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer func() {
			c.mu.Lock()
			delete(c.inflight, signalID)
			c.mu.Unlock()
		}()
		fn(context.Background())
	}()
}

func (c *Converter) remoteCreate(ctx context.Context, kind domain.Kind, e domain.Entity) {
	err := c.primary.Create(ctx, kind, e)
	if err == nil {
		c.observe("convert", gateway.GatewayPrimary, kind, e.EntityID(), dispatch.StateConfirmed, nil)
		return
	}
	c.observe("convert", gateway.GatewayPrimary, kind, e.EntityID(), dispatch.StateFailed, err)
	payload, _ := json.Marshal(e)
	_ = c.journal.Append(ctx, &journal.Record{
		Gateway:  gateway.GatewayPrimary,
		Op:       "create",
		Kind:     string(kind),
		EntityID: e.EntityID(),
		Payload:  payload,
		Cause:    err.Error(),
	})
	c.surface(err)
}

func (c *Converter) remoteSignalUpdate(ctx context.Context, id string, patch domain.Patch) {
	_, err := c.signals.Update(ctx, id, patch)
	if err == nil {
		c.observe("convert", gateway.GatewaySignals, domain.KindSignal, id, dispatch.StateConfirmed, nil)
		return
	}
	c.observe("convert", gateway.GatewaySignals, domain.KindSignal, id, dispatch.StateFailed, err)
	payload, _ := json.Marshal(patch)
	_ = c.journal.Append(ctx, &journal.Record{
		Gateway:  gateway.GatewaySignals,
		Op:       "update",
		Kind:     string(domain.KindSignal),
		EntityID: id,
		Payload:  payload,
		Cause:    err.Error(),
	})
	c.surface(err)
}

func (c *Converter) surface(err error) {
	select {
	case c.errs <- err:
	default:
	}
}

func (c *Converter) observe(op, gw string, kind domain.Kind, id string, state dispatch.MutationState, err error) {
	c.observer.ObserveMutation(dispatch.MutationEvent{
		Op:       op,
		Gateway:  gw,
		Kind:     kind,
		EntityID: id,
		State:    state,
		Err:      err,
		At:       c.clock(),
	})
}
