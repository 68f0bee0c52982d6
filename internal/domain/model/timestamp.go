package model

import (
	"bytes"
	"encoding/json"
)

// Timestamp is a backend date value kept in its wire form.
// The backend serializes dates as epoch millis, ISO strings or
// Jackson date arrays depending on its mapper settings, so decoding
// is deferred to the formatter.
type Timestamp json.RawMessage

// UnmarshalJSON stores a copy of the raw value.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	*t = append((*t)[:0], b...)
	return nil
}

// MarshalJSON writes the raw value back, or null when empty.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if len(t) == 0 {
		return []byte("null"), nil
	}
	return []byte(t), nil
}

// IsZero reports whether the timestamp is absent or JSON null.
func (t Timestamp) IsZero() bool {
	trimmed := bytes.TrimSpace(t)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Interface decodes the raw value into a plain Go value
// (string, json.Number, []any, bool or nil).
func (t Timestamp) Interface() any {
	if t.IsZero() {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(t))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return v
}
