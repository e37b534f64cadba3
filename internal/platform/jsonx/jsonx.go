// Package jsonx reads and writes the JSON text blobs kept in the key-value
// store. Decoding never fails: anything unusable turns into the caller's
// fallback, and shape validation is left to the caller.
package jsonx

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Parse reports whether text holds a non-null JSON value that decodes into T.
func Parse[T any](text string) (T, bool) {
	var out T
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == "null" {
		return out, false
	}
	if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
		var zero T
		return zero, false
	}
	return out, true
}

// Decode returns the parsed value, or fallback when text is empty, null or
// not valid JSON for T.
func Decode[T any](text string, fallback T) T {
	out, ok := Parse[T](text)
	if !ok {
		return fallback
	}
	return out
}

// Encode renders v as compact JSON without HTML escaping, so umlauts and
// characters like "&" stay readable in the stored blob.
func Encode(v any) (string, error) {
	buf := bytes.Buffer{}
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
