package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPatch_StrPtrNilClears verifies an explicit nil clears a pointer field
// while an absent key leaves it alone.
func TestPatch_StrPtrNilClears(t *testing.T) {
	id := "init-1"
	p := &Project{ID: "p1", ThemeID: "t1", InitiativeID: &id}

	p.Apply(Patch{"title": "renamed"})
	require.NotNil(t, p.InitiativeID, "absent key must not clear the field")

	p.Apply(Patch{"initiativeId": nil})
	assert.Nil(t, p.InitiativeID)
	assert.Equal(t, "renamed", p.Title)
}

// TestPatch_IgnoresUnknownKeysAndWrongTypes verifies that unrecognized keys
// and mistyped values never disturb existing fields.
func TestPatch_IgnoresUnknownKeysAndWrongTypes(t *testing.T) {
	y := &Year{ID: "y1", Title: "2027"}
	y.Apply(Patch{"bogus": "x", "title": 42})

	assert.Equal(t, "2027", y.Title)
}

// TestPatch_IntAcceptsJSONFloat verifies numbers decoded from JSON (float64)
// land in int fields.
func TestPatch_IntAcceptsJSONFloat(t *testing.T) {
	r := &NewRestaurant{Category: CategoryNew, Seats: 10}
	r.Apply(Patch{"seats": float64(120)})

	assert.Equal(t, 120, r.Seats)
}

// TestPatch_TimeAcceptsRFC3339String verifies wire-format timestamps parse
// into pointer time fields and explicit nil clears them.
func TestPatch_TimeAcceptsRFC3339String(t *testing.T) {
	r := &NewRestaurant{Category: CategoryNew}
	r.Apply(Patch{"openingDate": "2027-03-01T00:00:00Z"})

	require.NotNil(t, r.OpeningDate)
	assert.Equal(t, time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC), *r.OpeningDate)

	r.Apply(Patch{"openingDate": nil})
	assert.Nil(t, r.OpeningDate)
}

// TestPatch_IDsDeduplicates verifies id-list values are deduplicated with
// first occurrence winning, for every accepted representation.
func TestPatch_IDsDeduplicates(t *testing.T) {
	v := &Vision{ID: "v1"}

	v.Apply(Patch{"brandIds": []string{"b1", "b2", "b1"}})
	assert.Equal(t, LinkSet{"b1", "b2"}, v.BrandIDs)

	v.Apply(Patch{"brandIds": []any{"b3", "b3", "b4"}})
	assert.Equal(t, LinkSet{"b3", "b4"}, v.BrandIDs)
}

// TestPatch_CloneIsShallowButIndependent verifies key additions to a clone do
// not leak into the source patch.
func TestPatch_CloneIsShallowButIndependent(t *testing.T) {
	p := Patch{"title": "a"}
	c := p.Clone()
	c["status"] = "done"

	_, ok := p["status"]
	assert.False(t, ok)
}
