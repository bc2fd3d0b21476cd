package unicase

import (
	"encoding/json"
	"unicode/utf8"
)

// MarshalText implements encoding.TextMarshaler. It emits the original,
// case-preserved text.
func (t Text[P]) MarshalText() ([]byte, error) {
	return []byte(t.s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Input that is not
// valid UTF-8 is rejected with [ErrInvalidEncoding]; nothing is repaired
// or substituted.
func (t *Text[P]) UnmarshalText(b []byte) error {
	if !utf8.Valid(b) {
		return ErrInvalidEncoding
	}
	t.s = string(b)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Text[P]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.s)
}

// UnmarshalJSON implements json.Unmarshaler. Raw input that is not valid
// UTF-8 is rejected with [ErrInvalidEncoding] before decoding, since
// encoding/json would otherwise silently replace invalid bytes with
// U+FFFD.
func (t *Text[P]) UnmarshalJSON(b []byte) error {
	if !utf8.Valid(b) {
		return ErrInvalidEncoding
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t.s = s
	return nil
}
