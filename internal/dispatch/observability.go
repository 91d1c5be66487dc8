package dispatch

import (
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/northstar/internal/domain"
)

// MutationState tracks a dispatched intent through its lifecycle. There is no
// rolled-back state: remote failure leaves the local mirror as applied.
type MutationState string

const (
	StateRequested MutationState = "requested"
	StateApplied   MutationState = "applied"
	StateConfirmed MutationState = "confirmed"
	StateFailed    MutationState = "failed"
)

// MutationEvent captures one transition of a dispatched mutation.
type MutationEvent struct {
	Op       string
	Gateway  string
	Kind     domain.Kind
	EntityID string
	State    MutationState
	Err      error
	At       time.Time
}

// MutationObserver receives mutation lifecycle events.
type MutationObserver interface {
	ObserveMutation(event MutationEvent)
}

// NoopMutationObserver ignores all events.
type NoopMutationObserver struct{}

func (NoopMutationObserver) ObserveMutation(MutationEvent) {}

type logMutationObserver struct {
	logger *slog.Logger
}

// NewLogMutationObserver writes mutation events to the provided writer.
func NewLogMutationObserver(w io.Writer) MutationObserver {
	if w == nil {
		return NoopMutationObserver{}
	}
	return &logMutationObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logMutationObserver) ObserveMutation(event MutationEvent) {
	attrs := []any{
		"op", event.Op,
		"kind", string(event.Kind),
		"entity_id", event.EntityID,
		"state", string(event.State),
	}
	if event.Gateway != "" {
		attrs = append(attrs, "gateway", event.Gateway)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.Error("mutation", attrs...)
		return
	}
	o.logger.Info("mutation", attrs...)
}
