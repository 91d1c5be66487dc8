package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewEntity_CoversEveryKind verifies the factory produces a value for each
// registered kind and that the value reports the physical kind back.
func TestNewEntity_CoversEveryKind(t *testing.T) {
	for _, kind := range AllKinds {
		e, ok := NewEntity(kind)
		require.True(t, ok, "no factory for kind %s", kind)
		assert.Equal(t, kind, e.Kind())
	}
}

// TestNewEntity_AliasPresetsCategory verifies the alias kinds produce
// restaurants with the matching category already set.
func TestNewEntity_AliasPresetsCategory(t *testing.T) {
	e, ok := NewEntity(KindRestaurantOpening)
	require.True(t, ok)
	assert.Equal(t, CategoryNew, e.(*NewRestaurant).Category)

	e, ok = NewEntity(KindFacelift)
	require.True(t, ok)
	assert.Equal(t, CategoryFacelift, e.(*NewRestaurant).Category)
}

// TestResolveKind verifies alias kinds collapse to the physical collection
// and unknown strings fail validation.
func TestResolveKind(t *testing.T) {
	assert.Equal(t, KindNewRestaurant, ResolveKind(KindRestaurantOpening))
	assert.Equal(t, KindNewRestaurant, ResolveKind(KindFacelift))
	assert.Equal(t, KindTheme, ResolveKind(KindTheme))

	assert.True(t, ValidKind(KindNewRestaurant))
	assert.False(t, ValidKind(Kind("widgets")))
}

// TestClone_DeepCopiesLinkFields verifies cloned entities share no link-set
// or pointer state with the original.
func TestClone_DeepCopiesLinkFields(t *testing.T) {
	locID := "loc-1"
	r := &NewRestaurant{
		ID:         "r1",
		Category:   CategoryFacelift,
		BrandIDs:   LinkSet{"b1"},
		LocationID: &locID,
	}
	c := r.Clone().(*NewRestaurant)
	c.BrandIDs = c.BrandIDs.Add("b2")
	*c.LocationID = "loc-2"

	assert.Equal(t, LinkSet{"b1"}, r.BrandIDs)
	assert.Equal(t, "loc-1", *r.LocationID)
}

// TestValidPhase_IsCategoryScoped verifies phases only validate inside their
// owning category.
func TestValidPhase_IsCategoryScoped(t *testing.T) {
	assert.True(t, ValidPhase(CategoryNew, PhaseBuildOut))
	assert.True(t, ValidPhase(CategoryFacelift, PhaseReconstruction))

	assert.False(t, ValidPhase(CategoryNew, PhaseClosure))
	assert.False(t, ValidPhase(CategoryFacelift, PhaseScouting))
	assert.False(t, ValidPhase(CategoryNew, RestaurantPhase("demolition")))
}

// TestSignal_ConvertedGuardsStatus verifies the helper the dispatcher leans on
// for its immutability check.
func TestSignal_ConvertedGuardsStatus(t *testing.T) {
	sg := &Signal{ID: "s1", Status: SignalInbox}
	assert.False(t, sg.Converted())

	sg.Status = SignalConverted
	assert.True(t, sg.Converted())
}
