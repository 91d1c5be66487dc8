package gateway

import (
	"testing"

	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCamelSnakeRoundTrip verifies the two key translators invert each other
// for the field names the primary store sees.
func TestCamelSnakeRoundTrip(t *testing.T) {
	cases := map[string]string{
		"id":                "id",
		"yearId":            "year_id",
		"connectedThemeIds": "connected_theme_ids",
		"updatedAt":         "updated_at",
	}
	for camel, snake := range cases {
		assert.Equal(t, snake, camelToSnake(camel))
		assert.Equal(t, camel, snakeToCamel(snake))
	}
}

// TestEntityToWire_TranslatesNestedKeys verifies an entity flattens to snake
// case including link-set fields.
func TestEntityToWire_TranslatesNestedKeys(t *testing.T) {
	v := &domain.Vision{
		ID:       "v1",
		YearID:   "y1",
		Title:    "Grow",
		BrandIDs: domain.LinkSet{"b1", "b2"},
	}
	record, err := entityToWire(v)
	require.NoError(t, err)

	assert.Equal(t, "y1", record["year_id"])
	assert.Equal(t, []any{"b1", "b2"}, record["brand_ids"])
	_, hasCamel := record["yearId"]
	assert.False(t, hasCamel)
}

// TestPatchToWire_NormalizesValues verifies patch values serialize the same
// way entity fields do, under snake-cased keys.
func TestPatchToWire_NormalizesValues(t *testing.T) {
	p := domain.Patch{
		"themeIds":  domain.LinkSet{"t1"},
		"updatedBy": "user-1",
	}
	record := patchToWire(p)

	assert.Equal(t, []any{"t1"}, record["theme_ids"])
	assert.Equal(t, "user-1", record["updated_by"])
}

// TestWireToEntity_DecodesTypedRecord verifies a snake-cased record becomes a
// fully typed entity, alias kinds included.
func TestWireToEntity_DecodesTypedRecord(t *testing.T) {
	record := map[string]any{
		"id":           "r1",
		"category":     "facelift",
		"name":         "Refit",
		"phase":        "closure",
		"location_id":  "loc-1",
		"brand_ids":    []any{"b1"},
		"closure_date": "2027-01-15T00:00:00Z",
	}
	e, err := wireToEntity(domain.KindNewRestaurant, record)
	require.NoError(t, err)

	r := e.(*domain.NewRestaurant)
	assert.Equal(t, domain.CategoryFacelift, r.Category)
	require.NotNil(t, r.LocationID)
	assert.Equal(t, "loc-1", *r.LocationID)
	assert.Equal(t, domain.LinkSet{"b1"}, r.BrandIDs)
	require.NotNil(t, r.ClosureDate)
}

// TestWireToEntity_UnknownKind verifies decoding fails for a kind outside the
// registry.
func TestWireToEntity_UnknownKind(t *testing.T) {
	_, err := wireToEntity(domain.Kind("widgets"), map[string]any{"id": "x"})
	assert.Error(t, err)
}
