package journal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

// TestJournal_AppendAssignsIDAndTimestamp verifies appends fill in the record
// id and a creation timestamp.
func TestJournal_AppendAssignsIDAndTimestamp(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	r := &Record{
		Gateway:  "primary",
		Op:       "create",
		Kind:     "themes",
		EntityID: "t1",
		Payload:  []byte(`{"title":"x"}`),
		Cause:    "connection refused",
	}
	require.NoError(t, j.Append(ctx, r))

	assert.NotZero(t, r.ID)
	assert.False(t, r.CreatedAt.IsZero())
}

// TestJournal_ListReturnsInAppendOrder verifies listing preserves insertion
// order with all fields intact.
func TestJournal_ListReturnsInAppendOrder(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	first := &Record{Gateway: "primary", Op: "create", Kind: "years", EntityID: "y1", Cause: "down"}
	second := &Record{Gateway: "signals", Op: "update", Kind: "signals", EntityID: "s1",
		Payload: []byte(`{"status":"converted"}`), Cause: "401"}
	require.NoError(t, j.Append(ctx, first))
	require.NoError(t, j.Append(ctx, second))

	records, err := j.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "y1", records[0].EntityID)
	assert.Equal(t, "signals", records[1].Gateway)
	assert.Equal(t, []byte(`{"status":"converted"}`), records[1].Payload)
}

// TestJournal_GetAndDelete verifies the retry workflow primitives: fetch one
// record, remove it after a successful retry.
func TestJournal_GetAndDelete(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	r := &Record{Gateway: "primary", Op: "delete", Kind: "brands", EntityID: "b1", Cause: "timeout"}
	require.NoError(t, j.Append(ctx, r))

	got, err := j.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "b1", got.EntityID)

	require.NoError(t, j.Delete(ctx, r.ID))
	_, err = j.Get(ctx, r.ID)
	assert.Error(t, err)
}

// TestJournal_Clear verifies clear drops every record.
func TestJournal_Clear(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	require.NoError(t, j.Append(ctx, &Record{Gateway: "primary", Op: "create", Kind: "years", EntityID: "y1", Cause: "x"}))
	require.NoError(t, j.Append(ctx, &Record{Gateway: "primary", Op: "create", Kind: "years", EntityID: "y2", Cause: "x"}))

	require.NoError(t, j.Clear(ctx))
	records, err := j.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}
