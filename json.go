package smallstr

import "encoding/json"

// The serialization hooks encode a String as the plain UTF-8 text it holds
// and decode by running incoming text through the validated ingestion path.

// MarshalJSON implements json.Marshaler, encoding the content as a JSON
// string.
func (s *String) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler. The decoded text replaces the
// String's content; existing heap storage is reused, so escalation stays
// monotonic across decodes.
func (s *String) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	return s.setText(str)
}

// MarshalText implements encoding.TextMarshaler, returning a copy of the
// content.
func (s *String) MarshalText() ([]byte, error) {
	out := make([]byte, s.n)
	copy(out, s.view())
	return out, nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Invalid UTF-8 is
// rejected with a *InvalidUTF8Error before any mutation; the error carries
// a copy of the input, since text unmarshalers do not own their argument.
func (s *String) UnmarshalText(text []byte) error {
	if i := firstInvalidByte(text); i >= 0 {
		rejected := make([]byte, len(text))
		copy(rejected, text)
		return &InvalidUTF8Error{Bytes: rejected, Offset: i}
	}
	return s.setText(string(text))
}

// setText replaces the content with str, keeping the current storage where
// it already suffices.
func (s *String) setText(str string) error {
	s.Truncate(0)
	s.PushString(str)
	return nil
}
