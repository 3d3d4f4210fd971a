package util

import "encoding/json"

// DecodeOrDefault decodes a serialized JSON column into T. Malformed or
// absent content yields the fallback and false, never an error - persisted
// rows stay readable regardless of what a past writer stored.
func DecodeOrDefault[T any](raw *string, fallback T) (T, bool) {
	if raw == nil || *raw == "" {
		return fallback, false
	}
	var out T
	if err := json.Unmarshal([]byte(*raw), &out); err != nil {
		return fallback, false
	}
	return out, true
}

// EncodeJSON serializes v for storage in a text column.
func EncodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
