package smallstr

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Errors returned by smallstr operations.
var (
	ErrInvalidCapacity = errors.New("capacity must be positive")
)

// InvalidUTF8Error reports a byte sequence rejected by validated ingestion.
// It carries the rejected bytes, returning their ownership to the caller,
// and the offset of the first invalid byte.
type InvalidUTF8Error struct {
	Bytes  []byte // the rejected input, unmodified
	Offset int    // offset of the first invalid byte
}

// Error implements the error interface.
func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 at byte offset %d", e.Offset)
}

// firstInvalidByte returns the offset of the first byte at which b stops
// being well-formed UTF-8, or -1 if b is valid.
func firstInvalidByte(b []byte) int {
	for i := 0; i < len(b); {
		if b[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
