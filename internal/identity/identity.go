// Package identity canonicalizes the identity keys used by rosters and
// biometric devices so they can be compared across systems
package identity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Kind names the punch field an identity key was taken from.
type Kind string

const (
	KindNone      Kind = ""
	KindStudentID Kind = "student_id"
	KindEventCode Kind = "event_code"
	KindUserName  Kind = "user_name"
)

// Key is a normalized identity value tagged with its origin.
type Key struct {
	Kind  Kind
	Value string
}

// Normalize lower-cases raw, strips diacritics and trims surrounding
// whitespace. It is total and idempotent.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)

	s, _, err := transform.String(t, raw)
	if err != nil {
		s = raw
	}

	return strings.ToLower(strings.TrimSpace(s))
}

// Equal reports whether a and b refer to the same identity.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Keys returns the non-empty normalized keys for the given identity fields.
// Duplicate values keep the first kind they appeared under.
func Keys(studentID, eventCode, userName string) []Key {
	fields := []Key{
		{Kind: KindStudentID, Value: studentID},
		{Kind: KindEventCode, Value: eventCode},
		{Kind: KindUserName, Value: userName},
	}

	keys := make([]Key, 0, len(fields))
	seen := make(map[string]bool, len(fields))

	for _, f := range fields {
		v := Normalize(f.Value)
		if v == "" || seen[v] {
			continue
		}

		seen[v] = true

		keys = append(keys, Key{Kind: f.Kind, Value: v})
	}

	return keys
}
