package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Index_OnInsertAndLookup(t *testing.T) {
	// given
	ix := NewIndex()
	// when
	ix.OnInsert("1", 10)
	ix.OnInsert("1", 11)
	ix.OnInsert("2", 12)
	// then
	assert.Equal(t, []int64{10, 11}, ix.Lookup("1"))
	assert.Equal(t, []int64{12}, ix.Lookup("2"))
	assert.Empty(t, ix.Lookup("3"))
}

func Test_Index_OnRemove_DropsEmptyBucket(t *testing.T) {
	// given
	ix := NewIndex()
	ix.OnInsert("1", 10)
	ix.OnInsert("1", 11)
	// when
	ix.OnRemove("1", 10)
	// then
	assert.Equal(t, []int64{11}, ix.Lookup("1"))
	assert.Equal(t, 1, ix.Len())
	// when: the last id under the key is removed
	ix.OnRemove("1", 11)
	// then: the key entry is gone entirely, not an empty set
	assert.Empty(t, ix.Lookup("1"))
	assert.Equal(t, 0, ix.Len())
}

func Test_Index_OnRemove_UnknownKeyIsNoop(t *testing.T) {
	ix := NewIndex()
	ix.OnInsert("1", 10)
	ix.OnRemove("2", 10)
	assert.Equal(t, []int64{10}, ix.Lookup("1"))
}

func Test_Index_OnKeyChange(t *testing.T) {
	// given
	ix := NewIndex()
	ix.OnInsert("1", 10)
	ix.OnInsert("1", 11)
	// when
	ix.OnKeyChange("1", "2", 10)
	// then
	assert.Equal(t, []int64{11}, ix.Lookup("1"))
	assert.Equal(t, []int64{10}, ix.Lookup("2"))
}

func Test_Index_OnKeyChange_SameKeyIsNoop(t *testing.T) {
	ix := NewIndex()
	ix.OnInsert("1", 10)
	ix.OnKeyChange("1", "1", 10)
	assert.Equal(t, []int64{10}, ix.Lookup("1"))
	assert.Equal(t, 1, ix.Len())
}

func Test_Index_Lookup_ReturnsCopy(t *testing.T) {
	// given
	ix := NewIndex()
	ix.OnInsert("1", 10)
	ix.OnInsert("1", 11)
	// when: the caller mangles the returned slice
	got := ix.Lookup("1")
	require.Len(t, got, 2)
	got[0] = 999
	// then: the index itself is untouched
	assert.Equal(t, []int64{10, 11}, ix.Lookup("1"))
}
