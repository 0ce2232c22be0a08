package smallstr

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// Comparison, ordering, and hashing operate on the logical byte view only.
// Whether a String is inline or heap-backed is not observable from any of
// them.

// Equal reports whether s and other hold the same bytes.
func (s *String) Equal(other *String) bool {
	return bytes.Equal(s.view(), other.view())
}

// EqualString reports whether s holds exactly the bytes of str.
func (s *String) EqualString(str string) bool {
	return string(s.view()) == str
}

// Compare returns -1, 0, or 1 ordering s against other byte-wise, which for
// valid UTF-8 is code-point order.
func (s *String) Compare(other *String) int {
	return bytes.Compare(s.view(), other.view())
}

// Hash64 returns the xxHash64 digest of the content. Equal content hashes
// equally regardless of representation.
func (s *String) Hash64() uint64 {
	return xxhash.Sum64(s.view())
}
