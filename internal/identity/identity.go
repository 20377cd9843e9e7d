// Package identity validates identifiers arriving over untrusted
// transports. The realtime channel carries raw JSON, so unlike the HTTP
// surface there is no typed request schema in front of it: any event
// payload field may be a number, bool, null or collection instead of a
// well-formed ID string.
package identity

import (
	"encoding/json"
	"errors"
	"regexp"
)

var (
	// ErrWrongType means the value is not a string at all.
	ErrWrongType = errors.New("identifier is not a string")
	// ErrInvalidFormat means the string does not match the UUID grammar.
	ErrInvalidFormat = errors.New("identifier is not a valid UUID")
)

// Fixed-length, hyphen-segmented hexadecimal token, case-insensitive.
var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// Validate reports whether s is a well-formed identifier.
func Validate(s string) error {
	if !uuidPattern.MatchString(s) {
		return ErrInvalidFormat
	}
	return nil
}

// Parse decodes a raw JSON value into an identifier. It distinguishes
// wrong-typed values (ErrWrongType) from malformed strings
// (ErrInvalidFormat) so callers can reject hostile payloads before any
// store access.
func Parse(raw json.RawMessage) (string, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", ErrWrongType
	}

	s, ok := v.(string)
	if !ok {
		return "", ErrWrongType
	}

	if err := Validate(s); err != nil {
		return "", err
	}
	return s, nil
}
