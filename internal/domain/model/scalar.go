package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Text is a string field that also accepts JSON numbers and booleans.
// The backend is inconsistent about identifiers: Mongo ids arrive as
// strings, SQL ids as numbers. Objects, arrays and null decode to "".
type Text string

// UnmarshalJSON never fails, so one odd field does not abort the record.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0:
		*t = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*t = ""
			return nil
		}
		*t = Text(s)
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'), bytes.Equal(b, []byte("true")), bytes.Equal(b, []byte("false")):
		*t = Text(b)
	default:
		*t = ""
	}
	return nil
}

// Count is an integer field that also accepts numeric strings
// ("7", "7.0"). Anything else decodes to 0.
type Count int

// UnmarshalJSON never fails, so one odd field does not abort the record.
func (c *Count) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*c = 0
			return nil
		}
		b = bytes.TrimSpace([]byte(s))
	}
	*c = Count(parseCount(string(b)))
	return nil
}

func parseCount(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}
