// Package matching scores how well two profiles fit as research partners and
// ranks a candidate pool for a requesting profile.
package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Weights controls how each signal contributes to a match score.
//
// JaccardWeight must stay below LocationWeight, and LocationWeight below
// InterestWeight, so that a candidate sharing more interests always ranks
// above one sharing fewer regardless of location or set overlap.
type Weights struct {
	InterestWeight float64 `yaml:"interest_weight" env:"MATCH_INTEREST_WEIGHT"`
	LocationWeight float64 `yaml:"location_weight" env:"MATCH_LOCATION_WEIGHT"`
	JaccardWeight  float64 `yaml:"jaccard_weight" env:"MATCH_JACCARD_WEIGHT"`
}

// DefaultWeights returns the weights used when none are configured.
func DefaultWeights() Weights {
	return Weights{
		InterestWeight: 10,
		LocationWeight: 5,
		JaccardWeight:  4,
	}
}

// Valid reports whether the weights keep the ranking monotonic in shared interests.
func (w Weights) Valid() bool {
	return w.JaccardWeight >= 0 &&
		w.LocationWeight >= w.JaccardWeight &&
		w.InterestWeight > w.LocationWeight+w.JaccardWeight
}

// Candidate is the projection of a profile needed for scoring.
type Candidate struct {
	ProfileID   uuid.UUID
	UserID      uuid.UUID
	Name        string
	ProfileType string
	Location    string
	Interests   []string
}

// Match is one ranked candidate.
type Match struct {
	ProfileID       uuid.UUID
	Name            string
	ProfileType     string
	Location        string
	Interests       []string
	Score           float64
	SharedInterests []string
}

// Scorer computes match scores with a fixed set of weights.
type Scorer struct {
	weights Weights
}

// NewScorer creates a Scorer. Invalid weights fall back to DefaultWeights.
func NewScorer(weights Weights) *Scorer {
	if !weights.Valid() {
		weights = DefaultWeights()
	}
	return &Scorer{weights: weights}
}

// Weights returns the weights in use.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Score returns the match score of candidate for self and the interests they share.
// Shared interests keep the casing and order of self's interest list.
func (s *Scorer) Score(self, candidate Candidate) (float64, []string) {
	own := normalizedSet(self.Interests)
	theirs := normalizedSet(candidate.Interests)

	shared := make([]string, 0)
	seen := make(map[string]struct{}, len(self.Interests))
	for _, interest := range self.Interests {
		key := normalize(interest)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if _, ok := theirs[key]; ok {
			shared = append(shared, strings.TrimSpace(interest))
		}
	}

	union := len(own) + len(theirs) - len(shared)
	jaccard := 0.0
	if union > 0 {
		jaccard = float64(len(shared)) / float64(union)
	}

	score := s.weights.InterestWeight*float64(len(shared)) + s.weights.JaccardWeight*jaccard
	if SameLocation(self.Location, candidate.Location) {
		score += s.weights.LocationWeight
	}

	return math.Round(score*100) / 100, shared
}

// Rank scores every candidate except self and returns them ordered by score,
// highest first. Ties are broken by name and then profile id so the order is
// deterministic. A limit <= 0 returns all candidates.
func (s *Scorer) Rank(self Candidate, candidates []Candidate, limit int) []Match {
	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		if c.ProfileID == self.ProfileID {
			continue
		}
		if self.UserID != uuid.Nil && c.UserID == self.UserID {
			continue
		}
		score, shared := s.Score(self, c)
		matches = append(matches, Match{
			ProfileID:       c.ProfileID,
			Name:            c.Name,
			ProfileType:     c.ProfileType,
			Location:        c.Location,
			Interests:       c.Interests,
			Score:           score,
			SharedInterests: shared,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		ni, nj := strings.ToLower(matches[i].Name), strings.ToLower(matches[j].Name)
		if ni != nj {
			return ni < nj
		}
		return matches[i].ProfileID.String() < matches[j].ProfileID.String()
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Percentages normalizes scores against the highest one:
// round(score / max(maxScore, 1) * 100). A score of 0 is always 0%.
func Percentages(scores []float64) []int {
	maxScore := 1.0
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}
	out := make([]int, len(scores))
	for i, s := range scores {
		if s <= 0 {
			continue
		}
		out[i] = int(math.Round(s / maxScore * 100))
	}
	return out
}

// SameLocation compares two free-form locations ignoring case and surrounding space.
// Empty locations never match.
func SameLocation(a, b string) bool {
	na, nb := normalize(a), normalize(b)
	return na != "" && na == nb
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func normalizedSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if key := normalize(v); key != "" {
			set[key] = struct{}{}
		}
	}
	return set
}
