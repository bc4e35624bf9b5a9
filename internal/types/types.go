package types

import (
	"regexp"
	"strings"
)

var positiveNumeric = regexp.MustCompile(`^[1-9][0-9]*$`)

// StringPtr converts a string to a pointer to a string
func StringPtr(s string) *string {
	return &s
}

// NonEmptyStringPtr returns nil for blank strings, otherwise a pointer to the trimmed value
func NonEmptyStringPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// StringNilOrEmpty checks if a pointer to a string is nil or empty
func StringNilOrEmpty(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// SafeString returns a safe string from a pointer to a string
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FirstNonEmpty returns the first argument that is not blank
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// BoolPtr converts a bool to a pointer to a bool
func BoolPtr(b bool) *bool {
	return &b
}

// Int64Ptr converts an int64 to a pointer to an int64
func Int64Ptr(i int64) *int64 {
	return &i
}

// Uint64Ptr converts a uint64 to a pointer to a uint64
func Uint64Ptr(i uint64) *uint64 {
	return &i
}

// IsPositiveNumeric checks if a string is a valid positive numeric value
func IsPositiveNumeric(s string) bool {
	return positiveNumeric.MatchString(s)
}

// IsTezosAddress checks if a string is a valid Tezos address
func IsTezosAddress(s string) bool {
	for _, prefix := range []string{"tz1", "tz2", "tz3", "tz4", "KT1"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
