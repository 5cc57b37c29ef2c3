package fallback

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/followdesk/followdesk/pkg/types"
)

func TestSlotRoundTrip(t *testing.T) {
	slot := NewSlot(t.TempDir())

	state := types.PersistedState{
		Customers: []types.Customer{{ID: "c1", Name: "深圳客户A"}},
		Todos:     []types.Todo{{ID: "t1", Title: "回访", CustomerID: "c1", OrderDraft: types.OrderDraft{Items: []types.DraftItem{}}}},
		Meta:      types.Meta{SchemaVersion: 2, LastSavedAt: 42},
	}
	require.NoError(t, slot.Write(state))

	got := slot.Read()
	assert.Equal(t, state, got)
}

func TestSlotReadMissingFile(t *testing.T) {
	slot := NewSlot(t.TempDir())
	got := slot.Read()
	assert.Empty(t, got.Customers)
	assert.Empty(t, got.Orders)
}

func TestSlotReadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	slot := NewSlot(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, SlotFileName), []byte("{not json"), 0o644))

	got := slot.Read()
	assert.Equal(t, types.PersistedState{}, got)
}

func TestSlotWriteCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	slot := NewSlot(dir)
	require.NoError(t, slot.Write(types.PersistedState{}))
	_, err := os.Stat(slot.Path())
	assert.NoError(t, err)
}
