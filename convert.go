package smallstr

// FromString creates a String with the given content, copying it through
// the bulk append path. Content up to InlineCapacity bytes stays inline;
// anything longer lands on the heap with the bulk rule's power-of-two
// capacity. Go strings are immutable, so a copy is unavoidable here; use
// FromBytes to adopt an existing allocation instead.
func FromString(str string, opts ...Option) *String {
	s := New(opts...)
	s.PushString(str)
	return s
}

// FromBytes validates b as UTF-8 and, on success, adopts it directly as
// heap storage: no copy, length len(b), capacity cap(b). The String takes
// exclusive ownership of b's allocation; the caller must not reuse it.
// A buffer with no backing allocation (cap 0) yields an inline empty
// String, since there is nothing to adopt.
//
// On failure it returns a *InvalidUTF8Error carrying b, whose ownership
// stays with the caller, and the offset of the first invalid byte.
func FromBytes(b []byte, opts ...Option) (*String, error) {
	if i := firstInvalidByte(b); i >= 0 {
		return nil, &InvalidUTF8Error{Bytes: b, Offset: i}
	}
	return FromBytesUnchecked(b, opts...), nil
}

// FromBytesUnchecked adopts b the same way FromBytes does but skips
// validation. The caller guarantees b is valid UTF-8; if it is not, the
// behavior of every subsequent read is unspecified.
func FromBytesUnchecked(b []byte, opts ...Option) *String {
	s := New(opts...)
	if cap(b) == 0 {
		return s
	}
	s.n = len(b)
	s.kind = storageHeap
	s.heap = b[:cap(b)]
	return s
}

// IntoBytes consumes the String and returns its content as an owned byte
// buffer. Heap storage hands over its allocation without copying, with the
// capacity it had; inline storage allocates a fresh buffer and copies.
// The receiver is reset to a fresh empty value.
func (s *String) IntoBytes() []byte {
	var out []byte
	switch s.kind {
	case storageInline:
		out = s.mustAlloc(s.n)
		copy(out, s.inline[:s.n])
	case storageHeap:
		out = s.heap[:s.n]
	default:
		panic("smallstr: corrupt storage tag")
	}
	*s = String{alloc: s.alloc}
	return out
}

// Bytes returns the content as a byte slice. The slice aliases the String's
// storage: it is valid until the next mutation and must not be modified.
func (s *String) Bytes() []byte {
	return s.view()
}

// String returns the content as a Go string, copying it.
func (s *String) String() string {
	return string(s.view())
}
