package smallstr

import (
	"fmt"
	"unicode/utf8"
)

// Push appends a single rune, encoding it as 1-4 bytes of UTF-8.
// Amortized O(1). An invalid rune is encoded as utf8.RuneError, matching
// the standard library's convention.
//
// While inline, content that still fits stays inline. The first rune that
// does not fit escalates to a heap buffer of initialHeapCapacity bytes;
// after that the buffer doubles whenever it runs out of room.
func (s *String) Push(r rune) {
	var enc [utf8.UTFMax]byte
	w := utf8.EncodeRune(enc[:], r)
	newLen := s.n + w

	switch {
	case s.kind == storageInline && newLen <= InlineCapacity:
		copy(s.inline[s.n:newLen], enc[:w])
	case s.kind == storageInline:
		s.escalate(initialHeapCapacity)
		copy(s.heap[s.n:newLen], enc[:w])
	default:
		if newLen > len(s.heap) {
			s.growHeap(doubledCapacity(len(s.heap), newLen))
		}
		copy(s.heap[s.n:newLen], enc[:w])
	}
	s.n = newLen
}

// PushString appends str, which the caller guarantees is valid UTF-8 (Go
// string values conventionally are). Amortized O(1) per byte. Growth and
// escalation use the bulk rule: capacity becomes the smallest power of two
// that holds the new length.
func (s *String) PushString(str string) {
	if len(str) == 0 {
		return
	}
	newLen := s.n + len(str)

	switch {
	case s.kind == storageInline && newLen <= InlineCapacity:
		copy(s.inline[s.n:newLen], str)
	case s.kind == storageInline:
		s.escalate(bulkCapacity(newLen))
		copy(s.heap[s.n:newLen], str)
	default:
		if newLen > len(s.heap) {
			s.growHeap(bulkCapacity(newLen))
		}
		copy(s.heap[s.n:newLen], str)
	}
	s.n = newLen
}

// Pop removes and returns the last rune. It returns false if the String is
// empty. Cost is bounded by the rune's byte width, not the content length.
func (s *String) Pop() (rune, bool) {
	if s.n == 0 {
		return 0, false
	}
	r, w := utf8.DecodeLastRune(s.view())
	s.n -= w
	return r, true
}

// Remove removes and returns the rune starting at byte offset idx, shifting
// all trailing bytes left by the rune's width. O(Len).
//
// Remove panics if idx is out of range or does not lie on a rune boundary;
// both are caller contract violations, not runtime conditions.
func (s *String) Remove(idx int) rune {
	if idx < 0 || idx >= s.n {
		panic(fmt.Sprintf("smallstr: Remove: offset %d out of range for length %d", idx, s.n))
	}
	b := s.view()
	if !utf8.RuneStart(b[idx]) {
		panic(fmt.Sprintf("smallstr: Remove: offset %d is not on a rune boundary", idx))
	}
	r, w := utf8.DecodeRune(b[idx:])
	copy(b[idx:], b[idx+w:])
	s.n -= w
	return r
}

// Retain keeps only the runes for which keep returns true, compacting
// survivors in place and preserving their order. Single left-to-right pass,
// O(Len). Capacity is never reduced.
func (s *String) Retain(keep func(rune) bool) {
	b := s.view()
	del := 0
	for idx := 0; idx < s.n; {
		r, w := utf8.DecodeRune(b[idx:])
		if !keep(r) {
			del += w
		} else if del > 0 {
			copy(b[idx-del:idx-del+w], b[idx:idx+w])
		}
		idx += w
	}
	s.n -= del
}

// Truncate shortens the content to n bytes. It is a no-op when n >= Len.
// Capacity is unchanged; a heap-backed String stays heap-backed.
//
// Truncate panics if n is negative or falls inside a multi-byte rune.
func (s *String) Truncate(n int) {
	if n < 0 {
		panic(fmt.Sprintf("smallstr: Truncate: negative length %d", n))
	}
	if n >= s.n {
		return
	}
	if !utf8.RuneStart(s.view()[n]) {
		panic(fmt.Sprintf("smallstr: Truncate: offset %d is not on a rune boundary", n))
	}
	s.n = n
}

// Clear empties the String. Equivalent to Truncate(0): no storage is
// released and a heap-backed String stays heap-backed.
func (s *String) Clear() {
	s.Truncate(0)
}

// Reset is Clear under the name builder-style callers expect.
func (s *String) Reset() {
	s.Clear()
}

// Reserve ensures capacity for at least additional more bytes beyond the
// current length. It is a no-op if the capacity already suffices, including
// while inline. Otherwise it escalates or grows using the bulk rule, so the
// resulting capacity is the smallest power of two holding Len+additional.
func (s *String) Reserve(additional int) {
	if additional <= 0 {
		return
	}
	need := s.n + additional
	switch {
	case s.kind == storageInline && need <= InlineCapacity:
	case s.kind == storageInline:
		s.escalate(bulkCapacity(need))
	default:
		if need > len(s.heap) {
			s.growHeap(bulkCapacity(need))
		}
	}
}

// ShrinkToFit reallocates a heap buffer down to exactly Len bytes, or to
// one byte for empty content so the heap invariants keep holding. It is a
// no-op while inline or when the capacity is already exact.
func (s *String) ShrinkToFit() {
	if s.kind != storageHeap {
		return
	}
	target := s.n
	if target == 0 {
		target = 1
	}
	if target == len(s.heap) {
		return
	}
	s.growHeap(target)
}

// WriteString appends str and returns its length with a nil error,
// satisfying io.StringWriter.
func (s *String) WriteString(str string) (int, error) {
	s.PushString(str)
	return len(str), nil
}

// WriteRune appends r and returns the number of bytes written with a nil
// error, mirroring strings.Builder.
func (s *String) WriteRune(r rune) (int, error) {
	before := s.n
	s.Push(r)
	return s.n - before, nil
}
