package domain

// Entity is implemented by every record held in the entity store.
type Entity interface {
	// EntityID returns the opaque stable id, generated client-side at create.
	EntityID() string

	// SetID assigns the id; called once by the dispatcher at create time.
	SetID(id string)

	// Kind returns the physical collection the entity lives in.
	Kind() Kind

	// Meta returns the audit fields for stamping.
	Meta() *Audit

	// Apply merges a partial-field patch into the entity. Unknown keys are
	// ignored; audit keys are handled by the dispatcher, not here.
	Apply(p Patch)

	// Clone returns a deep-enough copy: link sets are duplicated so that
	// applying a patch to the clone never aliases the original.
	Clone() Entity
}
