// Package arena implements the scoped scratch-buffer allocator called for
// by the core's design notes: every operation acquires its temporary digit
// vectors from one abstraction, and every exit path - including error
// paths - releases them. The source library switches between three
// allocation strategies at compile time (stack, heap, static arena); this
// module keeps the choice behind the single Arena type and offers the two
// strategies that make sense in Go: a pooled heap arena (the default, and
// the closest analogue to a per-thread static arena) and a plain heap
// allocator for callers that don't want pooling.
package arena

import "sync"

// Digit is a local alias matching dv.Digit without importing dv, so this
// package stays a leaf with no dependency on the layers that use it.
type Digit = uint64

// Arena hands out scratch digit vectors and returns them to a free list on
// Release. It is not safe for concurrent use - the resource model gives
// each Context (and therefore each Arena) to exactly one goroutine.
type Arena struct {
	pool    *sync.Pool
	lent    [][]Digit
}

// New creates an Arena backed by a single sync.Pool shared by all vector
// lengths: Get reuses a pooled slice when its capacity is large enough
// and allocates a new one otherwise. Most core operations request a
// small, fixed set of scratch lengths per call (the digit-width of the
// active field or curve), so reuse avoids most allocation across calls
// on the same Context.
func New() *Arena {
	return &Arena{
		pool: &sync.Pool{
			New: func() any { return new([]Digit) },
		},
	}
}

// Get returns a zeroed scratch vector of length n. The caller must not
// retain it past the matching Release.
func (a *Arena) Get(n int) []Digit {
	slot := a.pool.Get().(*[]Digit)
	if cap(*slot) < n {
		*slot = make([]Digit, n)
	} else {
		*slot = (*slot)[:n]
		for i := range *slot {
			(*slot)[i] = 0
		}
	}
	v := *slot
	a.lent = append(a.lent, v)
	return v
}

// Release returns every vector acquired since the Arena was created (or
// since the last Release) to the pool. Callers defer Release immediately
// after New so that scratch storage is freed on every exit path,
// including panics recovered by an outer caller and ordinary error
// returns.
func (a *Arena) Release() {
	for _, v := range a.lent {
		cp := v
		a.pool.Put(&cp)
	}
	a.lent = a.lent[:0]
}

// Heap allocates scratch vectors directly from the Go heap, bypassing
// pooling. It satisfies the same shape as Arena.Get/Release so call sites
// written against the pooled Arena can be handed a Heap instead without
// change, matching the source library's "one abstraction, several
// strategies" requirement.
type Heap struct{}

// Get allocates a zeroed vector of length n.
func (Heap) Get(n int) []Digit { return make([]Digit, n) }

// Release is a no-op: the Go garbage collector owns heap-allocated
// scratch once it is unreferenced.
func (Heap) Release() {}
