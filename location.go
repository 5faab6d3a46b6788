package configdata

import "strings"

// OptionalPrefix marks a location that does not need to exist
const OptionalPrefix = "optional:"

// Location is a user specified location that config data can be loaded from,
// for example "classpath:/config/" or "optional:file:./config/app.hcl"
type Location struct {
	// Value is the location without the optional prefix
	Value string
	// Optional is true when the location was prefixed with "optional:"
	Optional bool
}

// ParseLocation creates a Location from a string, the "optional:" prefix is
// removed from the value and recorded in Optional
func ParseLocation(s string) Location {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, OptionalPrefix) {
		return Location{Value: strings.TrimPrefix(s, OptionalPrefix), Optional: true}
	}

	return Location{Value: s}
}

// IsEmpty returns true when the location has no value
func (l Location) IsEmpty() bool {
	return l.Value == ""
}

// HasPrefix returns true if the value starts with prefix
func (l Location) HasPrefix(prefix string) bool {
	return strings.HasPrefix(l.Value, prefix)
}

// NonPrefixedValue returns the value with prefix removed
func (l Location) NonPrefixedValue(prefix string) string {
	return strings.TrimPrefix(l.Value, prefix)
}

// IsDirectory returns true when the location references a directory
func (l Location) IsDirectory() bool {
	return strings.HasSuffix(l.Value, "/")
}

// Split splits a location containing several values delimited by ";", the
// optional flag is applied to every element
func (l Location) Split() []Location {
	parts := strings.Split(l.Value, ";")
	locs := make([]Location, 0, len(parts))

	for _, p := range parts {
		loc := ParseLocation(p)
		if loc.IsEmpty() {
			continue
		}

		loc.Optional = loc.Optional || l.Optional
		locs = append(locs, loc)
	}

	return locs
}

func (l Location) String() string {
	if l.Optional {
		return OptionalPrefix + l.Value
	}

	return l.Value
}
