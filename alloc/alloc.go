// Package alloc provides the byte-buffer allocation capability consumed by
// smallstr's heap storage. It exists to let callers re-use already
// allocated memory under allocation-heavy workloads; the default allocator
// simply defers to the runtime.
package alloc

import (
	"math/bits"
	"sync"
)

// Allocator hands out byte buffers for heap-backed strings. Alloc returns a
// buffer of at least size bytes with len == size. Realloc grows or shrinks
// a buffer, preserving content up to the smaller of the two sizes. Free
// releases a buffer obtained from Alloc or Realloc; buffers must be freed
// at most once and not used afterward.
//
// Implementations must be safe for concurrent use by independent callers.
type Allocator interface {
	Alloc(size int) []byte
	Realloc(b []byte, size int) []byte
	Free(b []byte)
}

// Default is the allocator used when a String is not configured with one.
var Default Allocator = Heap{}

// Heap allocates through the runtime and never recycles; Free is a no-op
// because the garbage collector reclaims buffers once unreferenced.
type Heap struct{}

// Alloc implements Allocator.
func (Heap) Alloc(size int) []byte {
	return make([]byte, size)
}

// Realloc implements Allocator. Shrinking reslices in place; growing copies
// into a fresh buffer.
func (Heap) Realloc(b []byte, size int) []byte {
	if size <= cap(b) {
		return b[:size]
	}
	nb := make([]byte, size)
	copy(nb, b)
	return nb
}

// Free implements Allocator.
func (Heap) Free([]byte) {}

// Size classes for Pool: powers of two from 32 bytes to 1 MiB. Requests
// outside the range fall through to the runtime.
const (
	minClassBits = 5
	maxClassBits = 20
	classCount   = maxClassBits - minClassBits + 1
)

// Pool recycles buffers through per-size-class sync.Pools. It trades a
// little slack (buffers are rounded up to a power-of-two class) for far
// fewer allocations when many strings grow and are released in a loop.
type Pool struct {
	classes [classCount]sync.Pool
}

// NewPool creates a Pool with empty size classes.
func NewPool() *Pool {
	p := &Pool{}
	for i := range p.classes {
		size := 1 << (minClassBits + i)
		p.classes[i].New = func() interface{} {
			b := make([]byte, size)
			return &b
		}
	}
	return p
}

// classFor returns the index of the smallest class holding size bytes.
// size must be in (0, 1<<maxClassBits].
func classFor(size int) int {
	k := bits.Len(uint(size - 1))
	if k < minClassBits {
		return 0
	}
	return k - minClassBits
}

// Alloc implements Allocator. The returned buffer has len == size; its
// capacity is the size class it came from.
func (p *Pool) Alloc(size int) []byte {
	if size <= 0 {
		return []byte{}
	}
	if size > 1<<maxClassBits {
		return make([]byte, size)
	}
	b := *(p.classes[classFor(size)].Get().(*[]byte))
	return b[:size]
}

// Realloc implements Allocator. Shrinking reslices in place. Growing
// allocates from the target class, copies, and recycles the old buffer.
func (p *Pool) Realloc(b []byte, size int) []byte {
	if size <= cap(b) {
		return b[:size]
	}
	nb := p.Alloc(size)
	copy(nb, b)
	p.Free(b)
	return nb
}

// Free implements Allocator. Only buffers whose capacity is exactly one of
// the pool's size classes are recycled; anything else is left to the
// garbage collector.
func (p *Pool) Free(b []byte) {
	c := cap(b)
	if c < 1<<minClassBits || c > 1<<maxClassBits || c&(c-1) != 0 {
		return
	}
	full := b[:c]
	p.classes[classFor(c)].Put(&full)
}
