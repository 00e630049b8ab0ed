package domain

import "strings"

// Address is a delivery destination. It is an input value only and is
// never mutated after construction.
type Address struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Geocode    *Coordinates
}

// Format renders the address as a single normalized line, suitable as a
// stable cache key and as the query sent to remote lookup services.
func (a Address) Format() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Street, a.City, a.State, a.PostalCode} {
		p = normalizeSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// normalizeSpace collapses runs of whitespace so equivalent inputs
// produce identical cache keys.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
