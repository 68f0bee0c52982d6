package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DecodeRecords decodes a JSON array of records one element at a time.
// A field whose value does not fit its Go type is left at its zero
// value and the rest of the record is kept, so a single off-type field
// never drops the list. Only a body that is not an array is an error.
// The returned count is the number of records decoded partially.
func DecodeRecords[T any](data []byte) ([]T, int, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("decode record list: %w", err)
	}

	out := make([]T, len(raw))
	partial := 0
	for i, elem := range raw {
		err := json.Unmarshal(elem, &out[i])
		if err == nil {
			continue
		}
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, 0, fmt.Errorf("decode record %d: %w", i, err)
		}
		partial++
	}
	return out, partial, nil
}
