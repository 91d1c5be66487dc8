// Package audit derives creation/modification provenance from the current
// actor and wall-clock time. A nil actor is stamped as-is rather than
// rejected: the system stays usable before identity resolves.
package audit

import (
	"time"

	"github.com/alexanderramin/northstar/internal/domain"
)

// Clock returns the current instant; swapped in tests.
type Clock func() time.Time

// UTCNow is the default clock.
func UTCNow() time.Time { return time.Now().UTC() }

// StampCreate sets both provenance pairs to the same actor and instant.
func StampCreate(actor *string, now Clock) domain.Audit {
	if now == nil {
		now = UTCNow
	}
	t := now()
	return domain.Audit{
		CreatedBy: actor,
		CreatedAt: t,
		UpdatedBy: actor,
		UpdatedAt: t,
	}
}

// StampUpdate overwrites only the update pair, preserving creation
// provenance. UpdatedAt never moves backwards relative to CreatedAt.
func StampUpdate(actor *string, prev domain.Audit, now Clock) domain.Audit {
	if now == nil {
		now = UTCNow
	}
	t := now()
	if t.Before(prev.CreatedAt) {
		t = prev.CreatedAt
	}
	out := prev
	out.UpdatedBy = actor
	out.UpdatedAt = t
	return out
}
