package permute

import (
	"sort"
)

// Iterator lazily enumerates every bijection of a finite keyed mapping
// onto its own value set: for n keys it yields exactly n! mappings, no
// duplicates, no omissions, each an independent copy. The caller's map is
// never mutated. The sequence is not rewindable; restart by constructing
// a new Iterator.
//
// Enumeration is pivot-and-swap: fix each position in turn, and for every
// later position swap its value into the pivot slot before enumerating the
// remainder. The recursion is driven by an explicit frame stack so callers
// pull one arrangement at a time.
type Iterator[K comparable, V any] struct {
	keys    []K
	vals    []V
	frames  []frame
	emitted uint64
}

// frame tracks one pivot position and the next swap candidate to try.
type frame struct {
	pivot int
	next  int
}

// New builds an iterator over all bijections of m. Keys are ordered by
// less so that enumeration is deterministic; the original arrangement is
// always yielded first.
func New[K comparable, V any](m map[K]V, less func(a, b K) bool) *Iterator[K, V] {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })

	vals := make([]V, len(keys))
	for i, k := range keys {
		vals[i] = m[k]
	}

	return &Iterator[K, V]{
		keys:   keys,
		vals:   vals,
		frames: []frame{{pivot: 0, next: 0}},
	}
}

// Next returns the next bijection, or false when the space is exhausted.
func (it *Iterator[K, V]) Next() (map[K]V, bool) {
	n := len(it.vals)
	for len(it.frames) > 0 {
		f := &it.frames[len(it.frames)-1]

		if f.pivot == n {
			it.frames = it.frames[:len(it.frames)-1]
			it.emitted++
			return it.arrangement(), true
		}

		if f.next > f.pivot {
			// The subtree for the previous candidate finished; undo its swap.
			it.vals[f.pivot], it.vals[f.next-1] = it.vals[f.next-1], it.vals[f.pivot]
		}

		if f.next == n {
			it.frames = it.frames[:len(it.frames)-1]
			continue
		}

		it.vals[f.pivot], it.vals[f.next] = it.vals[f.next], it.vals[f.pivot]
		f.next++
		it.frames = append(it.frames, frame{pivot: f.pivot + 1, next: f.pivot + 1})
	}
	return nil, false
}

// Emitted returns how many arrangements have been yielded so far.
func (it *Iterator[K, V]) Emitted() uint64 {
	return it.emitted
}

// Size returns the number of keys in the domain.
func (it *Iterator[K, V]) Size() int {
	return len(it.keys)
}

func (it *Iterator[K, V]) arrangement() map[K]V {
	m := make(map[K]V, len(it.keys))
	for i, k := range it.keys {
		m[k] = it.vals[i]
	}
	return m
}
