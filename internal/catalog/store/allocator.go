package store

// Allocator issues identifiers for a single entity collection.
// Every id it hands out is strictly greater than every id it has handed
// out before, so an id freed by deletion is never reissued. The counter
// is deliberately not derived from the current collection contents:
// "max id + 1" would recycle the highest id after that entity is deleted.
//
// Allocator is not safe for concurrent use on its own; the owning Store
// serializes access under its mutex.
type Allocator struct {
	last int64
}

// NewAllocator creates an allocator whose first issued id is 1.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns the next unique id.
func (a *Allocator) Next() int64 {
	a.last++
	return a.last
}
