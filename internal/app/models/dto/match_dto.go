package dto

import "github.com/google/uuid"

// MatchResponse is one ranked partner candidate.
type MatchResponse struct {
	ProfileID       uuid.UUID `json:"profileId"`
	Name            string    `json:"name"`
	ProfileType     string    `json:"profileType"`
	Location        string    `json:"location,omitempty"`
	Interests       []string  `json:"interests"`
	MatchScore      float64   `json:"matchScore" example:"24.5"`
	MatchPercent    int       `json:"matchPercent" example:"100"`
	SharedInterests []string  `json:"sharedInterests"`
}

// MatchListResponse lists partner matches. NeedsProfile is set when the caller
// has not created a profile yet and the list is therefore empty.
type MatchListResponse struct {
	Matches      []MatchResponse `json:"matches"`
	NeedsProfile bool            `json:"needsProfile"`
}
