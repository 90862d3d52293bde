package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// widget is a minimal entity shape for exercising the store: one id and
// one indexed foreign-key field.
type widget struct {
	ID      int64
	Name    string
	GroupID int64
}

const groupIndex = "group"

func newWidgetStore() *Store[widget] {
	s := New[widget](
		func(w widget) int64 { return w.ID },
		func(w widget, id int64) widget { w.ID = id; return w },
	)
	s.AddIndex(groupIndex, func(w widget) string { return IntKey(w.GroupID) })
	return s
}

func Test_Store_Add_AssignsIncreasingIDs(t *testing.T) {
	// given
	s := newWidgetStore()
	// when
	first := s.Add(widget{Name: "a", GroupID: 1})
	second := s.Add(widget{Name: "b", GroupID: 1})
	// then
	require.Equal(t, int64(1), first.ID)
	require.Equal(t, int64(2), second.ID)
	// when: the highest-id entity is deleted and a new one inserted
	require.True(t, s.Delete(second.ID))
	third := s.Add(widget{Name: "c", GroupID: 1})
	// then: the freed id is not reissued
	assert.Equal(t, int64(3), third.ID)
}

func Test_Store_FindByID(t *testing.T) {
	// given
	s := newWidgetStore()
	created := s.Add(widget{Name: "a", GroupID: 1})
	// when / then
	found, ok := s.FindByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, found)

	_, ok = s.FindByID(999)
	assert.False(t, ok)
}

func Test_Store_FindAll_InsertionOrder(t *testing.T) {
	// given
	s := newWidgetStore()
	s.Add(widget{Name: "a", GroupID: 1})
	b := s.Add(widget{Name: "b", GroupID: 2})
	s.Add(widget{Name: "c", GroupID: 1})
	// when
	require.True(t, s.Delete(b.ID))
	s.Add(widget{Name: "d", GroupID: 2})
	all := s.FindAll()
	// then: survivors in insertion order
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Name)
	assert.Equal(t, "c", all[1].Name)
	assert.Equal(t, "d", all[2].Name)
}

func Test_Store_FindAll_ReturnsCopy(t *testing.T) {
	s := newWidgetStore()
	s.Add(widget{Name: "a", GroupID: 1})
	all := s.FindAll()
	all[0].Name = "mangled"
	found, ok := s.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, "a", found.Name)
}

func Test_Store_Update(t *testing.T) {
	// given
	s := newWidgetStore()
	created := s.Add(widget{Name: "a", GroupID: 1})
	// when
	created.Name = "renamed"
	updated, ok := s.Update(created)
	// then
	require.True(t, ok)
	assert.Equal(t, "renamed", updated.Name)
	found, ok := s.FindByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, "renamed", found.Name)
}

func Test_Store_Update_NotFound(t *testing.T) {
	// given
	s := newWidgetStore()
	s.Add(widget{Name: "a", GroupID: 1})
	// when
	_, ok := s.Update(widget{ID: 999, Name: "ghost", GroupID: 1})
	// then: no mutation happened
	require.False(t, ok)
	assert.Equal(t, 1, s.Len())
	assert.Empty(t, s.FindByIndex(groupIndex, IntKey(999)))
}

func Test_Store_Update_RekeysIndex(t *testing.T) {
	// given
	s := newWidgetStore()
	created := s.Add(widget{Name: "a", GroupID: 1})
	s.Add(widget{Name: "b", GroupID: 1})
	// when: the indexed field changes value
	created.GroupID = 2
	_, ok := s.Update(created)
	require.True(t, ok)
	// then: no stale entry under the old key, exactly one under the new
	oldKey := s.FindByIndex(groupIndex, IntKey(1))
	require.Len(t, oldKey, 1)
	assert.Equal(t, "b", oldKey[0].Name)
	newKey := s.FindByIndex(groupIndex, IntKey(2))
	require.Len(t, newKey, 1)
	assert.Equal(t, "a", newKey[0].Name)
}

func Test_Store_Delete(t *testing.T) {
	// given
	s := newWidgetStore()
	created := s.Add(widget{Name: "a", GroupID: 1})
	// when / then: first delete succeeds, second reports absence
	require.True(t, s.Delete(created.ID))
	assert.False(t, s.Delete(created.ID))

	_, ok := s.FindByID(created.ID)
	assert.False(t, ok)
}

func Test_Store_Delete_RemovesEveryIndexEntry(t *testing.T) {
	// given
	s := newWidgetStore()
	created := s.Add(widget{Name: "a", GroupID: 7})
	s.Add(widget{Name: "b", GroupID: 7})
	// when
	require.True(t, s.Delete(created.ID))
	// then: the id is gone from the index, the sibling survives
	remaining := s.FindByIndex(groupIndex, IntKey(7))
	require.Len(t, remaining, 1)
	assert.Equal(t, "b", remaining[0].Name)
}

func Test_Store_IndexCoherence_AfterMixedOperations(t *testing.T) {
	// given: a churn of adds, updates and deletes
	s := newWidgetStore()
	a := s.Add(widget{Name: "a", GroupID: 1})
	b := s.Add(widget{Name: "b", GroupID: 1})
	c := s.Add(widget{Name: "c", GroupID: 2})
	require.True(t, s.Delete(a.ID))
	b.GroupID = 2
	_, ok := s.Update(b)
	require.True(t, ok)
	d := s.Add(widget{Name: "d", GroupID: 1})
	// then: each lookup returns exactly the live entities with that key
	group1 := s.FindByIndex(groupIndex, IntKey(1))
	require.Len(t, group1, 1)
	assert.Equal(t, d.ID, group1[0].ID)

	group2 := s.FindByIndex(groupIndex, IntKey(2))
	require.Len(t, group2, 2)
	assert.Equal(t, b.ID, group2[0].ID)
	assert.Equal(t, c.ID, group2[1].ID)
}

func Test_Store_FindByIndex_UnknownIndexPanics(t *testing.T) {
	s := newWidgetStore()
	assert.Panics(t, func() { s.FindByIndex("no-such-index", "1") })
}

func Test_Store_FindByIndex_DanglingEntryPanics(t *testing.T) {
	// given: a deliberately corrupted index, an entry with no live entity
	s := newWidgetStore()
	created := s.Add(widget{Name: "a", GroupID: 1})
	s.indexes[groupIndex].index.OnInsert(IntKey(1), created.ID+100)
	// then: divergence between collection and index is a defect, not a miss
	assert.Panics(t, func() { s.FindByIndex(groupIndex, IntKey(1)) })
}

func Test_Store_AddIndex_OnPopulatedStorePanics(t *testing.T) {
	s := newWidgetStore()
	s.Add(widget{Name: "a", GroupID: 1})
	assert.Panics(t, func() {
		s.AddIndex("late", func(w widget) string { return w.Name })
	})
}
