package smallstr

import "golang.org/x/text/encoding"

// DecodeBytes decodes b from the given legacy encoding and ingests the
// result. The decoder's output is a fresh allocation, so on success it is
// adopted as heap storage without a further copy. Decoders that map
// undecodable input to U+FFFD still succeed; decode errors and any invalid
// UTF-8 the decoder lets through are returned to the caller.
func DecodeBytes(b []byte, enc encoding.Encoding, opts ...Option) (*String, error) {
	decoded, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return nil, err
	}
	return FromBytes(decoded, opts...)
}
