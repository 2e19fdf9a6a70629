// Package directory filters and sorts the unified profile directory.
//
// Filter is a pure function: the same entries and criteria always produce the
// same output, and filtering an already filtered list with the same criteria is
// a no-op.
package directory

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// TypeAll disables the profile type filter.
const TypeAll = "all"

// SortBy names a sort order for directory results.
type SortBy string

const (
	SortByName         SortBy = "name"
	SortByNameDesc     SortBy = "name-desc"
	SortByOrganization SortBy = "organization"
	SortByLocation     SortBy = "location"
)

// ParseSortBy returns the sort order for s, defaulting to name.
func ParseSortBy(s string) SortBy {
	switch SortBy(strings.ToLower(strings.TrimSpace(s))) {
	case SortByNameDesc:
		return SortByNameDesc
	case SortByOrganization:
		return SortByOrganization
	case SortByLocation:
		return SortByLocation
	default:
		return SortByName
	}
}

// Entry is one profile in the directory, tagged with its type.
type Entry struct {
	ID           uuid.UUID `json:"id"`
	Type         string    `json:"type"`
	Name         string    `json:"name"`
	Organization string    `json:"organization,omitempty"`
	Title        string    `json:"title,omitempty"`
	Description  string    `json:"description,omitempty"`
	Location     string    `json:"location,omitempty"`
	Tags         []string  `json:"tags"`
	AvatarURL    string    `json:"avatarUrl,omitempty"`
}

// Criteria holds the active directory filters. Zero values disable a filter.
type Criteria struct {
	// Query is matched case-insensitively as a substring of name, organization,
	// title, description or any tag.
	Query string
	// ProfileType restricts results to one type; empty or TypeAll disables it.
	ProfileType string
	// Tags passes entries carrying at least one of the selected tags.
	Tags []string
	// Locations passes entries whose location is exactly one of the selected ones.
	Locations []string
	// LocationKeyword passes entries whose location contains the keyword.
	LocationKeyword string
	SortBy          SortBy
}

// Active reports whether any filter dimension is set.
func (c Criteria) Active() bool {
	return strings.TrimSpace(c.Query) != "" ||
		(c.ProfileType != "" && c.ProfileType != TypeAll) ||
		len(nonEmpty(c.Tags)) > 0 ||
		len(nonEmpty(c.Locations)) > 0 ||
		strings.TrimSpace(c.LocationKeyword) != ""
}

// Filter returns the entries satisfying every active criterion, sorted by
// criteria.SortBy. Ties keep their input order.
func Filter(entries []Entry, criteria Criteria) []Entry {
	m := newMatcher(criteria)

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if m.matches(e) {
			out = append(out, e)
		}
	}

	sortEntries(out, criteria.SortBy)
	return out
}

// Matches reports whether a single entry satisfies every active criterion.
func Matches(e Entry, criteria Criteria) bool {
	return newMatcher(criteria).matches(e)
}

type matcher struct {
	query     string
	typ       string
	tags      map[string]struct{}
	locations map[string]struct{}
	keyword   string
}

func newMatcher(c Criteria) matcher {
	m := matcher{
		query:   fold(c.Query),
		keyword: fold(c.LocationKeyword),
	}
	if t := fold(c.ProfileType); t != "" && t != TypeAll {
		m.typ = t
	}
	if tags := nonEmpty(c.Tags); len(tags) > 0 {
		m.tags = make(map[string]struct{}, len(tags))
		for _, t := range tags {
			m.tags[fold(t)] = struct{}{}
		}
	}
	if locs := nonEmpty(c.Locations); len(locs) > 0 {
		m.locations = make(map[string]struct{}, len(locs))
		for _, l := range locs {
			m.locations[fold(l)] = struct{}{}
		}
	}
	return m
}

func (m matcher) matches(e Entry) bool {
	if m.typ != "" && fold(e.Type) != m.typ {
		return false
	}
	if m.query != "" && !m.matchesQuery(e) {
		return false
	}
	if m.tags != nil && !m.matchesTags(e) {
		return false
	}
	if m.locations != nil {
		if _, ok := m.locations[fold(e.Location)]; !ok {
			return false
		}
	}
	if m.keyword != "" && !strings.Contains(fold(e.Location), m.keyword) {
		return false
	}
	return true
}

func (m matcher) matchesQuery(e Entry) bool {
	for _, field := range []string{e.Name, e.Organization, e.Title, e.Description} {
		if strings.Contains(fold(field), m.query) {
			return true
		}
	}
	for _, tag := range e.Tags {
		if strings.Contains(fold(tag), m.query) {
			return true
		}
	}
	return false
}

func (m matcher) matchesTags(e Entry) bool {
	for _, tag := range e.Tags {
		if _, ok := m.tags[fold(tag)]; ok {
			return true
		}
	}
	return false
}

func sortEntries(entries []Entry, by SortBy) {
	var less func(a, b Entry) bool
	switch by {
	case SortByNameDesc:
		less = func(a, b Entry) bool { return fold(a.Name) > fold(b.Name) }
	case SortByOrganization:
		less = func(a, b Entry) bool { return fold(a.Organization) < fold(b.Organization) }
	case SortByLocation:
		less = func(a, b Entry) bool { return fold(a.Location) < fold(b.Location) }
	default:
		less = func(a, b Entry) bool { return fold(a.Name) < fold(b.Name) }
	}
	sort.SliceStable(entries, func(i, j int) bool { return less(entries[i], entries[j]) })
}

// Facets lists the distinct tags and locations present in entries, sorted,
// for building filter pickers.
type Facets struct {
	Tags      []string `json:"tags"`
	Locations []string `json:"locations"`
}

// BuildFacets collects facets from entries. Values differing only in case are
// reported once using their first spelling.
func BuildFacets(entries []Entry) Facets {
	tags := newFacetSet()
	locations := newFacetSet()
	for _, e := range entries {
		for _, t := range e.Tags {
			tags.add(t)
		}
		locations.add(e.Location)
	}
	return Facets{Tags: tags.sorted(), Locations: locations.sorted()}
}

type facetSet struct {
	seen   map[string]struct{}
	values []string
}

func newFacetSet() *facetSet {
	return &facetSet{seen: make(map[string]struct{})}
}

func (s *facetSet) add(v string) {
	v = strings.TrimSpace(v)
	key := fold(v)
	if key == "" {
		return
	}
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.values = append(s.values, v)
}

func (s *facetSet) sorted() []string {
	out := append([]string{}, s.values...)
	sort.Slice(out, func(i, j int) bool { return fold(out[i]) < fold(out[j]) })
	return out
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
