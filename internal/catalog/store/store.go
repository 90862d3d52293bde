// Package store implements the in-memory entity store: one primary
// collection per entity kind plus its id allocator and secondary indexes.
// It is the persistence substitute used before a real database exists and
// the single owner of both the collection and its derived index state.
package store

import (
	"fmt"
	"strconv"
	"sync"
)

// KeyFunc extracts the indexed key for an entity.
type KeyFunc[E any] func(E) string

// IntKey formats an int64 foreign key for use as an index key.
func IntKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

type indexEntry[E any] struct {
	keyOf KeyFunc[E]
	index *Index
}

// Store owns one entity kind's primary collection, its id allocator and
// zero or more secondary indexes. It is the only component allowed to
// mutate any of them; every mutation updates the collection and all
// indexes under one lock, so callers never observe a state where an
// entity is present but unindexed or vice versa.
//
// Absence is signaled with booleans, never errors: translating a missing
// id into a typed failure is the repository layer's job.
type Store[E any] struct {
	mu      sync.RWMutex
	ids     *Allocator
	byID    map[int64]E
	order   []int64
	indexes map[string]indexEntry[E]
	idOf    func(E) int64
	withID  func(E, int64) E
}

// New creates an empty store. idOf reads an entity's id and withID
// returns a copy of the entity with the id set; the store itself stays
// agnostic of the concrete entity shape.
func New[E any](idOf func(E) int64, withID func(E, int64) E) *Store[E] {
	return &Store[E]{
		ids:     NewAllocator(),
		byID:    make(map[int64]E),
		order:   make([]int64, 0),
		indexes: make(map[string]indexEntry[E]),
		idOf:    idOf,
		withID:  withID,
	}
}

// AddIndex registers a secondary index under name. Indexes must be
// registered before the first Add; registering one on a populated store
// would leave existing entities unindexed.
func (s *Store[E]) AddIndex(name string, keyOf KeyFunc[E]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.byID) > 0 {
		panic(fmt.Sprintf("store: index %q registered on a populated store", name))
	}
	s.indexes[name] = indexEntry[E]{keyOf: keyOf, index: NewIndex()}
}

// Add allocates an id, stores the entity and files it in every index.
// It performs no uniqueness or referential checks; those belong to the
// service layer. Returns the stored entity including its id.
func (s *Store[E]) Add(entity E) E {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.ids.Next()
	entity = s.withID(entity, id)
	s.byID[id] = entity
	s.order = append(s.order, id)
	for _, entry := range s.indexes {
		entry.index.OnInsert(entry.keyOf(entity), id)
	}
	return entity
}

// FindByID returns the entity with the given id, or false if absent.
func (s *Store[E]) FindByID(id int64) (E, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.byID[id]
	return entity, ok
}

// FindAll returns all live entities in insertion order. The returned
// slice is a copy and does not track later mutations.
func (s *Store[E]) FindAll() []E {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]E, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.byID[id])
	}
	return list
}

// Update replaces the stored entity carrying the argument's id. Returns
// false without side effects when no such entity exists. When an indexed
// field changed value the index is rekeyed in the same critical section,
// so the collection and its indexes are never observable out of step.
func (s *Store[E]) Update(entity E) (E, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.idOf(entity)
	existing, ok := s.byID[id]
	if !ok {
		var zero E
		return zero, false
	}
	for _, entry := range s.indexes {
		entry.index.OnKeyChange(entry.keyOf(existing), entry.keyOf(entity), id)
	}
	s.byID[id] = entity
	return entity, true
}

// Delete removes the entity with the given id from the collection and
// from every index it participated in. Returns false without side
// effects when no such entity exists. The freed id is never reissued.
func (s *Store[E]) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entity, ok := s.byID[id]
	if !ok {
		return false
	}
	for _, entry := range s.indexes {
		entry.index.OnRemove(entry.keyOf(entity), id)
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// FindByIndex resolves key through the named index and maps the resulting
// ids back to entities, in insertion order. An unknown index name is a
// wiring bug and panics. An indexed id with no backing entity means the
// collection and the index have diverged; that breaks the store's core
// contract, so it also panics rather than being reported as a not-found.
func (s *Store[E]) FindByIndex(name, key string) []E {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.indexes[name]
	if !ok {
		panic(fmt.Sprintf("store: unknown index %q", name))
	}
	ids := entry.index.Lookup(key)
	list := make([]E, 0, len(ids))
	for _, id := range ids {
		entity, ok := s.byID[id]
		if !ok {
			panic(fmt.Sprintf("store: index %q resolves id %d to no live entity", name, id))
		}
		list = append(list, entity)
	}
	return list
}

// Len reports the number of live entities.
func (s *Store[E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
