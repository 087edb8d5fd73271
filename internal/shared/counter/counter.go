// Package counter allocates collection-scoped ids. The counter is seeded
// once from the loaded snapshot and advanced on every call, so a batch that
// allocates several ids can never hand out the same value twice and a
// deleted id is never reused.
package counter

import "strconv"

type Allocator struct {
	last map[string]int64
}

func NewAllocator() *Allocator {
	return &Allocator{last: make(map[string]int64)}
}

// Seed records the highest numeric id already present in a collection.
// Non-numeric ids are ignored; an empty collection leaves the counter at
// zero so the first allocation yields "1".
func (a *Allocator) Seed(collection string, ids []string) {
	var max int64
	for _, id := range ids {
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	if max > a.last[collection] {
		a.last[collection] = max
	}
}

// NextID returns the next unique id for a collection.
func (a *Allocator) NextID(collection string) string {
	a.last[collection]++
	return strconv.FormatInt(a.last[collection], 10)
}
