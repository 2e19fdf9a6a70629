package dto

import "github.com/impactlink/impactlink/internal/pkg/directory"

// DirectoryQuery binds the directory query string.
type DirectoryQuery struct {
	Query     string   `form:"q"`
	Type      string   `form:"type" binding:"omitempty,oneof=all student researcher agency"`
	Tags      []string `form:"tags"`
	Locations []string `form:"locations"`
	Location  string   `form:"location"`
	Sort      string   `form:"sort" binding:"omitempty,oneof=name name-desc organization location"`
}

// Criteria converts the query into filter criteria.
func (q DirectoryQuery) Criteria() directory.Criteria {
	return directory.Criteria{
		Query:           q.Query,
		ProfileType:     q.Type,
		Tags:            splitCSV(q.Tags),
		Locations:       q.Locations,
		LocationKeyword: q.Location,
		SortBy:          directory.ParseSortBy(q.Sort),
	}
}

// DirectoryResponse is the filtered directory plus filter pickers.
type DirectoryResponse struct {
	Results []directory.Entry `json:"results"`
	Count   int               `json:"count"`
	Facets  directory.Facets  `json:"facets"`
	// Filtered is true when any filter was active, so the client can offer
	// "clear filters" on an empty result.
	Filtered bool `json:"filtered"`
}
