package directory

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tagRotation = [][]string{
	{"Foster Care", "Trauma"},
	{"Juvenile Justice"},
	{"foster care", "Policy"},
	{"Kinship Care", "Adoption"},
	{"Policy"},
	{"Trauma", "Mental Health"},
	{"Foster Care"},
	{},
}

var locationRotation = []string{
	"Chicago, IL, USA",
	"Toronto, Canada",
	"Austin, TX, USA",
	"London, UK",
}

// sampleDirectory builds 8 students, 8 researchers and 8 agencies.
func sampleDirectory() []Entry {
	entries := make([]Entry, 0, 24)
	for _, typ := range []string{"student", "researcher", "agency"} {
		for i := 0; i < 8; i++ {
			entries = append(entries, Entry{
				ID:           uuid.New(),
				Type:         typ,
				Name:         fmt.Sprintf("%s %c", strings.ToUpper(typ[:1])+typ[1:], 'H'-rune(i)),
				Organization: fmt.Sprintf("Org %d", i%3),
				Title:        fmt.Sprintf("title-%s-%d", typ, i),
				Description:  "works on child welfare",
				Location:     locationRotation[i%len(locationRotation)],
				Tags:         tagRotation[i],
			})
		}
	}
	return entries
}

func TestFilterTypeAndTag(t *testing.T) {
	entries := sampleDirectory()

	got := Filter(entries, Criteria{ProfileType: "student", Tags: []string{"Foster Care"}})

	var expected []uuid.UUID
	for _, e := range entries {
		if e.Type != "student" {
			continue
		}
		for _, tag := range e.Tags {
			if strings.EqualFold(tag, "Foster Care") {
				expected = append(expected, e.ID)
				break
			}
		}
	}

	require.Len(t, got, 3)
	gotIDs := make([]uuid.UUID, 0, len(got))
	for _, e := range got {
		assert.Equal(t, "student", e.Type)
		gotIDs = append(gotIDs, e.ID)
	}
	assert.ElementsMatch(t, expected, gotIDs)
}

func TestFilterIsIdempotent(t *testing.T) {
	entries := sampleDirectory()
	criteria := []Criteria{
		{},
		{Query: "org 1"},
		{ProfileType: "agency", SortBy: SortByNameDesc},
		{Tags: []string{"Policy", "Trauma"}, SortBy: SortByLocation},
		{LocationKeyword: "usa", SortBy: SortByOrganization},
		{Locations: []string{"London, UK"}, Query: "welfare"},
	}

	for i, c := range criteria {
		t.Run(fmt.Sprintf("criteria-%d", i), func(t *testing.T) {
			once := Filter(entries, c)
			twice := Filter(once, c)
			assert.Equal(t, once, twice)
		})
	}
}

func TestFilterConjunction(t *testing.T) {
	entries := sampleDirectory()
	c := Criteria{
		Query:           "child",
		ProfileType:     "researcher",
		Tags:            []string{"Trauma", "Policy"},
		LocationKeyword: "usa",
	}

	got := Filter(entries, c)
	inOutput := make(map[uuid.UUID]bool, len(got))
	for _, e := range got {
		inOutput[e.ID] = true
	}

	for _, e := range entries {
		passesType := e.Type == "researcher"
		passesQuery := Matches(e, Criteria{Query: c.Query})
		passesTags := Matches(e, Criteria{Tags: c.Tags})
		passesLocation := strings.Contains(strings.ToLower(e.Location), "usa")

		want := passesType && passesQuery && passesTags && passesLocation
		assert.Equal(t, want, inOutput[e.ID], "entry %s (%s)", e.Name, e.Type)
	}
}

func TestFilterQueryFields(t *testing.T) {
	e := Entry{
		Name:         "Jordan Lee",
		Organization: "State University",
		Title:        "Associate Professor",
		Description:  "Studies placement stability",
		Tags:         []string{"Kinship Care"},
	}

	for _, q := range []string{"jordan", "STATE UNIV", "professor", "placement", "kinship", "  lee "} {
		assert.True(t, Matches(e, Criteria{Query: q}), q)
	}
	assert.False(t, Matches(e, Criteria{Query: "adoption"}))
}

func TestFilterTagsMatchAny(t *testing.T) {
	entries := sampleDirectory()

	// No entry carries both tags
	got := Filter(entries, Criteria{Tags: []string{"Juvenile Justice", "adoption"}})
	require.Len(t, got, 6)
	for _, e := range got {
		assert.True(t,
			containsFold(e.Tags, "Juvenile Justice") || containsFold(e.Tags, "Adoption"),
			"%s has tags %v", e.Name, e.Tags)
	}
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

func TestFilterLocationModes(t *testing.T) {
	entries := sampleDirectory()

	exact := Filter(entries, Criteria{Locations: []string{"toronto, canada", "London, UK"}})
	for _, e := range exact {
		assert.Contains(t, []string{"Toronto, Canada", "London, UK"}, e.Location)
	}
	assert.Len(t, exact, 12)

	keyword := Filter(entries, Criteria{LocationKeyword: "USA"})
	for _, e := range keyword {
		assert.Contains(t, e.Location, "USA")
	}
	assert.Len(t, keyword, 12)
}

func TestFilterTypeAllAndEmptyCriteria(t *testing.T) {
	entries := sampleDirectory()

	assert.Len(t, Filter(entries, Criteria{ProfileType: TypeAll}), len(entries))
	assert.Len(t, Filter(entries, Criteria{Tags: []string{"", "  "}}), len(entries))
	assert.False(t, Criteria{ProfileType: TypeAll, Tags: []string{" "}}.Active())
	assert.True(t, Criteria{LocationKeyword: "usa"}.Active())
	assert.Empty(t, Filter(entries, Criteria{Query: "no such thing"}))
	assert.NotNil(t, Filter(nil, Criteria{}))
}

func TestSortOrders(t *testing.T) {
	entries := []Entry{
		{Name: "bravo", Organization: "Zed", Location: "B"},
		{Name: "Alpha", Organization: "Yak", Location: "A"},
		{Name: "charlie", Organization: "Yak", Location: "A"},
	}

	names := func(es []Entry) []string {
		out := make([]string, len(es))
		for i, e := range es {
			out[i] = e.Name
		}
		return out
	}

	assert.Equal(t, []string{"Alpha", "bravo", "charlie"}, names(Filter(entries, Criteria{SortBy: SortByName})))
	assert.Equal(t, []string{"charlie", "bravo", "Alpha"}, names(Filter(entries, Criteria{SortBy: SortByNameDesc})))
	// Ties on organization and location keep input order.
	assert.Equal(t, []string{"Alpha", "charlie", "bravo"}, names(Filter(entries, Criteria{SortBy: SortByOrganization})))
	assert.Equal(t, []string{"Alpha", "charlie", "bravo"}, names(Filter(entries, Criteria{SortBy: SortByLocation})))
}

func TestParseSortBy(t *testing.T) {
	assert.Equal(t, SortByNameDesc, ParseSortBy("Name-Desc"))
	assert.Equal(t, SortByOrganization, ParseSortBy("organization"))
	assert.Equal(t, SortByLocation, ParseSortBy(" location "))
	assert.Equal(t, SortByName, ParseSortBy("unknown"))
}

func TestBuildFacets(t *testing.T) {
	facets := BuildFacets(sampleDirectory())

	assert.Equal(t, []string{"Adoption", "Foster Care", "Juvenile Justice", "Kinship Care", "Mental Health", "Policy", "Trauma"}, facets.Tags)
	assert.Equal(t, []string{"Austin, TX, USA", "Chicago, IL, USA", "London, UK", "Toronto, Canada"}, facets.Locations)
}
