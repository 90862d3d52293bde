package store

import "sort"

// Index maintains a secondary mapping from a key value (a denormalized
// foreign key, an email) to the set of entity ids whose indexed field
// currently equals that key. It is derived state: the owning Store keeps
// it in lockstep with the primary collection, so a lookup never returns
// the id of an entity that is no longer present.
//
// Index is not safe for concurrent use on its own; the owning Store
// serializes access under its mutex.
type Index struct {
	buckets map[string]map[int64]struct{}
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{buckets: make(map[string]map[int64]struct{})}
}

// OnInsert adds id to the set for key, creating the set if absent.
func (ix *Index) OnInsert(key string, id int64) {
	bucket, ok := ix.buckets[key]
	if !ok {
		bucket = make(map[int64]struct{})
		ix.buckets[key] = bucket
	}
	bucket[id] = struct{}{}
}

// OnRemove removes id from the set for key. An emptied set is dropped
// entirely so no empty-bucket residue accumulates.
func (ix *Index) OnRemove(key string, id int64) {
	bucket, ok := ix.buckets[key]
	if !ok {
		return
	}
	delete(bucket, id)
	if len(bucket) == 0 {
		delete(ix.buckets, key)
	}
}

// OnKeyChange moves id from oldKey's set to newKey's set. It is a no-op
// when the key did not actually change.
func (ix *Index) OnKeyChange(oldKey, newKey string, id int64) {
	if oldKey == newKey {
		return
	}
	ix.OnRemove(oldKey, id)
	ix.OnInsert(newKey, id)
}

// Lookup returns the ids currently filed under key, sorted ascending.
// Ids increase monotonically with insertion, so ascending id order is
// insertion order. The returned slice is a copy.
func (ix *Index) Lookup(key string) []int64 {
	bucket, ok := ix.buckets[key]
	if !ok {
		return nil
	}
	ids := make([]int64, 0, len(bucket))
	for id := range bucket {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len reports the number of distinct keys currently indexed.
func (ix *Index) Len() int {
	return len(ix.buckets)
}
