package smallstr

import (
	"github.com/dshills/smallstr/alloc"
)

// InlineCapacity is the number of bytes a String can hold before it
// escalates to heap storage.
const InlineCapacity = 23

// String is a growable, UTF-8 text buffer with small-value optimization.
// Values up to InlineCapacity bytes live inline in the struct; longer
// values live in an exclusively owned heap buffer. Escalation is one-way:
// a heap-backed String never reverts to inline storage.
//
// The zero value is an empty inline String, ready to use.
type String struct {
	n      int
	kind   storageKind
	inline [InlineCapacity]byte
	heap   []byte // active storage when kind == storageHeap; len(heap) is the capacity
	alloc  alloc.Allocator
}

// Option is a functional option for configuring a String.
type Option func(*String)

// WithAllocator sets the allocator used for heap storage.
// The default is alloc.Default.
func WithAllocator(a alloc.Allocator) Option {
	return func(s *String) {
		s.alloc = a
	}
}

// New creates a new empty String with inline storage.
func New(opts ...Option) *String {
	s := &String{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCapacity creates a new empty String backed by a heap buffer of
// exactly n bytes. It returns ErrInvalidCapacity if n is not positive;
// use New for an inline String.
func WithCapacity(n int, opts ...Option) (*String, error) {
	if n <= 0 {
		return nil, ErrInvalidCapacity
	}
	s := New(opts...)
	s.kind = storageHeap
	s.heap = s.mustAlloc(n)
	return s, nil
}

// Len returns the length of the content in bytes.
func (s *String) Len() int {
	return s.n
}

// IsEmpty returns true if the String contains no bytes.
func (s *String) IsEmpty() bool {
	return s.n == 0
}

// Cap returns the number of bytes the String can hold before its next
// growth or escalation: InlineCapacity while inline, the heap buffer's
// size once escalated.
func (s *String) Cap() int {
	switch s.kind {
	case storageInline:
		return InlineCapacity
	case storageHeap:
		return len(s.heap)
	default:
		panic("smallstr: corrupt storage tag")
	}
}

// OnHeap returns true once the String has escalated to heap storage.
// Escalation is permanent for the lifetime of the value.
func (s *String) OnHeap() bool {
	return s.kind == storageHeap
}

// Clone returns a deep copy of the String, re-optimizing representation:
// heap-backed content that fits inline clones to an inline String, while
// the receiver keeps its heap storage. Longer heap content clones to a new
// heap buffer of the same capacity.
func (s *String) Clone() *String {
	c := &String{n: s.n, alloc: s.alloc}
	switch {
	case s.kind == storageInline:
		c.inline = s.inline
	case s.n <= InlineCapacity:
		copy(c.inline[:], s.heap[:s.n])
	default:
		buf := s.mustAlloc(len(s.heap))
		copy(buf, s.heap[:s.n])
		c.kind = storageHeap
		c.heap = buf
	}
	return c
}

// Release returns any heap buffer to the allocator and resets the String
// to a fresh empty value. It is only worth calling with a recycling
// allocator such as alloc.Pool; with the default allocator the garbage
// collector reclaims the buffer regardless. The String must not be used
// concurrently with Release, and the reset value is a new instance as far
// as escalation history is concerned.
func (s *String) Release() {
	if s.kind == storageHeap {
		s.allocator().Free(s.heap)
	}
	*s = String{alloc: s.alloc}
}
