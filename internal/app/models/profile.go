package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StudentDetails holds the student-only profile fields.
type StudentDetails struct {
	University string `json:"university" example:"State University"`
	Major      string `json:"major" example:"Social Work"`
	Year       string `json:"year,omitempty" example:"Junior"`
}

// ResearcherDetails holds the researcher-only profile fields.
type ResearcherDetails struct {
	Institution  string   `json:"institution" example:"Center for Child Welfare"`
	Department   string   `json:"department,omitempty"`
	Title        string   `json:"title,omitempty" example:"Associate Professor"`
	Publications []string `json:"publications,omitempty"`
}

// AgencyDetails holds the agency-only profile fields.
type AgencyDetails struct {
	AgencyType string   `json:"agencyType" example:"Non-profit"`
	FocusAreas []string `json:"focusAreas,omitempty"`
	Employees  *int     `json:"employees,omitempty"`
	Founded    *int     `json:"founded,omitempty"`
	Website    string   `json:"website,omitempty"`
}

// ProfileDetails is a closed variant: exactly one member is set and it must
// match the owning profile's type. Stored as JSONB.
type ProfileDetails struct {
	Student    *StudentDetails    `json:"student,omitempty"`
	Researcher *ResearcherDetails `json:"researcher,omitempty"`
	Agency     *AgencyDetails     `json:"agency,omitempty"`
}

// Validate checks that the variant set matches profileType.
func (d ProfileDetails) Validate(profileType ProfileType) error {
	set := 0
	for _, present := range []bool{d.Student != nil, d.Researcher != nil, d.Agency != nil} {
		if present {
			set++
		}
	}
	if set > 1 {
		return fmt.Errorf("only one of student, researcher or agency details may be set")
	}

	switch profileType {
	case ProfileTypeStudent:
		if d.Student == nil && set == 1 {
			return fmt.Errorf("student profiles take student details")
		}
	case ProfileTypeResearcher:
		if d.Researcher == nil && set == 1 {
			return fmt.Errorf("researcher profiles take researcher details")
		}
	case ProfileTypeAgency:
		if d.Agency == nil && set == 1 {
			return fmt.Errorf("agency profiles take agency details")
		}
	default:
		return fmt.Errorf("unknown profile type %q", profileType)
	}
	return nil
}

// Profile is one platform participant. A user owns at most one profile.
type Profile struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	UserID      uuid.UUID      `json:"userId" db:"user_id"`
	ProfileType ProfileType    `json:"profileType" db:"profile_type" example:"researcher"`
	Name        string         `json:"name" db:"name" example:"Jordan Lee"`
	Email       string         `json:"email" db:"email" example:"jordan@stateu.edu"`
	Location    *string        `json:"location,omitempty" db:"location" example:"Chicago, IL, USA"`
	Bio         *string        `json:"bio,omitempty" db:"bio"`
	AvatarURL   *string        `json:"avatarUrl,omitempty" db:"avatar_url"`
	Interests   []string       `json:"interests" db:"interests"`
	Details     ProfileDetails `json:"details" db:"details"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

// Organization returns the university, institution or agency type shown in listings.
func (p *Profile) Organization() string {
	switch {
	case p.Details.Student != nil:
		return p.Details.Student.University
	case p.Details.Researcher != nil:
		return p.Details.Researcher.Institution
	case p.Details.Agency != nil:
		return p.Details.Agency.AgencyType
	}
	return ""
}

// Title returns the major, academic title or empty string.
func (p *Profile) Title() string {
	switch {
	case p.Details.Student != nil:
		return p.Details.Student.Major
	case p.Details.Researcher != nil:
		return p.Details.Researcher.Title
	}
	return ""
}

// Tags returns the interests plus, for agencies, their focus areas.
func (p *Profile) Tags() []string {
	if p.Details.Agency == nil || len(p.Details.Agency.FocusAreas) == 0 {
		return p.Interests
	}
	return NormalizeTags(append(append([]string{}, p.Interests...), p.Details.Agency.FocusAreas...))
}

// Summary returns the shallow projection joined onto posts, replies and requests.
func (p *Profile) Summary() *ProfileSummary {
	return &ProfileSummary{
		ID:          p.ID,
		Name:        p.Name,
		ProfileType: p.ProfileType,
		AvatarURL:   p.AvatarURL,
	}
}

// ProfileSummary is the author projection {id, name, type, avatar}.
type ProfileSummary struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	ProfileType ProfileType `json:"profileType"`
	AvatarURL   *string     `json:"avatarUrl,omitempty"`
}

// NormalizeTags trims values, drops empties and removes case-insensitive
// duplicates keeping the first spelling and order.
func NormalizeTags(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.Join(strings.Fields(v), " ")
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
