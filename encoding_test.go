package smallstr

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestDecodeBytes(t *testing.T) {
	t.Run("latin-1", func(t *testing.T) {
		s, err := DecodeBytes([]byte{'c', 'a', 'f', 0xE9}, charmap.ISO8859_1)
		if err != nil {
			t.Fatalf("DecodeBytes failed: %v", err)
		}
		if s.String() != "café" {
			t.Errorf("content = %q, want %q", s.String(), "café")
		}
	})

	t.Run("utf-16", func(t *testing.T) {
		enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
		in := []byte{0xFE, 0xFF, 0x00, 'h', 0x00, 'i'}
		s, err := DecodeBytes(in, enc)
		if err != nil {
			t.Fatalf("DecodeBytes failed: %v", err)
		}
		if s.String() != "hi" {
			t.Errorf("content = %q, want %q", s.String(), "hi")
		}
	})

	t.Run("passthrough bytes stay valid", func(t *testing.T) {
		s, err := DecodeBytes([]byte("plain ascii"), charmap.ISO8859_1)
		if err != nil {
			t.Fatalf("DecodeBytes failed: %v", err)
		}
		if s.String() != "plain ascii" {
			t.Errorf("content = %q", s.String())
		}
	})
}
