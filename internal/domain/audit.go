package domain

import "time"

// Audit carries creation/modification provenance. Actor pointers are nil when
// no identity has resolved yet; timestamps serialize as RFC 3339 instants.
type Audit struct {
	CreatedBy *string   `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedBy *string   `json:"updatedBy"`
	UpdatedAt time.Time `json:"updatedAt"`
}
