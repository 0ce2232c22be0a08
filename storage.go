package smallstr

import "github.com/dshills/smallstr/alloc"

// storageKind discriminates the two storage variants. All access to the
// active bytes goes through view or open so the dispatch lives in one place.
type storageKind uint8

const (
	storageInline storageKind = iota
	storageHeap
)

// view returns the logical content: the first n bytes of the active storage.
func (s *String) view() []byte {
	switch s.kind {
	case storageInline:
		return s.inline[:s.n]
	case storageHeap:
		return s.heap[:s.n]
	default:
		panic("smallstr: corrupt storage tag")
	}
}

// open returns the full active storage, capacity bytes long, for writing.
func (s *String) open() []byte {
	switch s.kind {
	case storageInline:
		return s.inline[:]
	case storageHeap:
		return s.heap
	default:
		panic("smallstr: corrupt storage tag")
	}
}

func (s *String) allocator() alloc.Allocator {
	if s.alloc != nil {
		return s.alloc
	}
	return alloc.Default
}

// mustAlloc allocates a buffer of exactly size bytes. Allocation failure is
// unrecoverable: there is no smaller-capacity fallback mid-mutation.
func (s *String) mustAlloc(size int) []byte {
	buf := s.allocator().Alloc(size)
	if buf == nil || len(buf) < size {
		panic("smallstr: allocator failed to provide buffer")
	}
	return buf[:size]
}

// escalate moves inline content into a new heap buffer of the given
// capacity. The inline array held no allocation, so there is nothing to
// release. Escalation is one-way; nothing ever moves content back inline.
func (s *String) escalate(capacity int) {
	buf := s.mustAlloc(capacity)
	copy(buf, s.inline[:s.n])
	s.kind = storageHeap
	s.heap = buf
}

// growHeap resizes the heap buffer to the given capacity, preserving
// content. Valid only once escalated.
func (s *String) growHeap(capacity int) {
	buf := s.allocator().Realloc(s.heap, capacity)
	if buf == nil || len(buf) < capacity {
		panic("smallstr: allocator failed to provide buffer")
	}
	s.heap = buf[:capacity]
}
