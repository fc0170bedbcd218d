// Package dependents declares which attributes an entity needs before it is
// considered loaded, and which of those attributes reference other entities.
package dependents

import (
	"strings"

	"github.com/diwise/library-resolver/pkg/library/types"
)

type Kind int

const (
	// Value attributes only gate completeness
	Value Kind = iota
	// References attributes hold an ordered list of uris to other entities
	References
)

type Attribute struct {
	Name string
	Kind Kind
}

type Set []Attribute

func ValueOf(name string) Attribute {
	return Attribute{Name: name, Kind: Value}
}

func ReferencesTo(name string) Attribute {
	return Attribute{Name: name, Kind: References}
}

// FromNames builds a Set from plain attribute names, where any name containing
// the "_uri" marker (tracks_uris, artist_uri, ...) is declared as References.
func FromNames(names ...string) Set {
	s := make(Set, 0, len(names))

	for _, name := range names {
		if strings.Contains(name, referenceMarker) {
			s = append(s, ReferencesTo(name))
		} else {
			s = append(s, ValueOf(name))
		}
	}

	return s
}

const referenceMarker string = "_uri"

func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for _, a := range s {
		names = append(names, a.Name)
	}
	return names
}

// Missing returns the names of the attributes that are undefined or null on e.
// Only deps are inspected unless isFull is set, in which case deps and full are
// inspected in that order. When e is nil every name in deps and full is
// reported. Duplicates are not removed.
func Missing(e types.Entity, deps, full Set, isFull bool) []string {
	all := concat(deps, full)

	if e == nil {
		return all.Names()
	}

	required := deps
	if isFull {
		required = all
	}

	missing := []string{}

	for _, a := range required {
		if _, ok := e.Attribute(a.Name); !ok {
			missing = append(missing, a.Name)
		}
	}

	return missing
}

// URIs collects, in declaration order, the uris held by the References
// attributes in deps and full. Attributes whose value is not a list contribute
// nothing.
func URIs(e types.Entity, deps, full Set) []string {
	uris := []string{}

	if e == nil {
		return uris
	}

	for _, a := range concat(deps, full) {
		if a.Kind != References {
			continue
		}

		value, ok := e.Attribute(a.Name)
		if !ok {
			continue
		}

		switch refs := value.(type) {
		case []string:
			uris = append(uris, refs...)
		case []any:
			for _, r := range refs {
				if uri, ok := r.(string); ok {
					uris = append(uris, uri)
				}
			}
		}
	}

	return uris
}

func concat(deps, full Set) Set {
	all := make(Set, 0, len(deps)+len(full))
	all = append(all, deps...)
	return append(all, full...)
}
