package helpers

import "strings"

// TrimmedOrNil trims s and returns nil when nothing is left, so optional text
// columns store NULL rather than empty strings.
func TrimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NonNil returns an empty slice for nil so TEXT[] NOT NULL columns accept it
// and JSON renders [] instead of null.
func NonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
