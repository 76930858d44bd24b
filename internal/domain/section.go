package domain

import "strings"

// SectionKind selects the entry routine run when a section activates
type SectionKind int

const (
	KindGeneric SectionKind = iota
	KindCounters
	KindTransform
	KindGallery
	KindImpact
)

// String returns the string representation of the kind
func (k SectionKind) String() string {
	switch k {
	case KindCounters:
		return "counters"
	case KindTransform:
		return "transform"
	case KindGallery:
		return "gallery"
	case KindImpact:
		return "impact"
	default:
		return "generic"
	}
}

// ParseSectionKind maps a declared kind name to a SectionKind.
// Unknown names are generic.
func ParseSectionKind(s string) SectionKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "counters":
		return KindCounters
	case "transform":
		return KindTransform
	case "gallery":
		return KindGallery
	case "impact":
		return KindImpact
	default:
		return KindGeneric
	}
}

// Section is one scroll-navigable division of the page
type Section struct {
	ID    string
	Index int
	Kind  SectionKind
}

// Registry holds the ordered sections of a page. Indices are assigned from
// registration order and never change afterwards.
type Registry struct {
	sections []Section
	byID     map[string]int
}

// NewRegistry registers sections in order, reassigning Index to position
func NewRegistry(sections ...Section) *Registry {
	r := &Registry{
		sections: make([]Section, len(sections)),
		byID:     make(map[string]int, len(sections)),
	}
	for i, s := range sections {
		s.Index = i
		r.sections[i] = s
		if _, dup := r.byID[s.ID]; !dup {
			r.byID[s.ID] = i
		}
	}
	return r
}

// ResolveIndex returns the position of the observed handle, or -1 if the
// handle was never registered.
func (r *Registry) ResolveIndex(handle string) int {
	if i, ok := r.byID[handle]; ok {
		return i
	}
	return -1
}

// Section returns the section at index i
func (r *Registry) Section(i int) (Section, bool) {
	if i < 0 || i >= len(r.sections) {
		return Section{}, false
	}
	return r.sections[i], true
}

// Lookup returns the section registered under id
func (r *Registry) Lookup(id string) (Section, bool) {
	i := r.ResolveIndex(id)
	if i < 0 {
		return Section{}, false
	}
	return r.sections[i], true
}

// ID returns the identifier at index i, or "" when out of range
func (r *Registry) ID(i int) string {
	if s, ok := r.Section(i); ok {
		return s.ID
	}
	return ""
}

// Len returns the number of registered sections
func (r *Registry) Len() int {
	return len(r.sections)
}

// Sections returns a copy of the registered sections in order
func (r *Registry) Sections() []Section {
	out := make([]Section, len(r.sections))
	copy(out, r.sections)
	return out
}
