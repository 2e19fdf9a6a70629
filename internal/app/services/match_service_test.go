package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/cache"
	"github.com/impactlink/impactlink/internal/pkg/matching"
)

func seedMatchProfiles(store *memProfileStore) (self, strong, weak *models.Profile) {
	self = store.add(&models.Profile{
		Name: "Self", ProfileType: models.ProfileTypeStudent,
		Location: strPtr("Chicago"), Interests: []string{"Child Welfare", "Policy", "Housing"},
	})
	strong = store.add(&models.Profile{
		Name: "Strong", ProfileType: models.ProfileTypeAgency,
		Location: strPtr("chicago "), Interests: []string{"child welfare", "policy"},
	})
	weak = store.add(&models.Profile{
		Name: "Weak", ProfileType: models.ProfileTypeResearcher,
		Location: strPtr("Boston"), Interests: []string{"Housing", "Education", "Health"},
	})
	store.add(&models.Profile{Name: "Nothing", ProfileType: models.ProfileTypeResearcher})
	return self, strong, weak
}

func TestGetPartnerMatchesRanksAndExcludesSelf(t *testing.T) {
	store := newMemProfileStore()
	self, strong, weak := seedMatchProfiles(store)
	svc := NewMatchService(store, nil, time.Minute, matching.NewScorer(matching.DefaultWeights()), 0, zerolog.Nop())

	matches, err := svc.GetPartnerMatches(context.Background(), self.ID, 0)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	for _, m := range matches {
		assert.NotEqual(t, self.ID, m.ProfileID)
	}
	assert.Equal(t, strong.ID, matches[0].ProfileID)
	assert.Equal(t, []string{"Child Welfare", "Policy"}, matches[0].SharedInterests)
	assert.Equal(t, 100, matches[0].MatchPercent)
	assert.Equal(t, weak.ID, matches[1].ProfileID)
	assert.Equal(t, 0, matches[2].MatchPercent)
	assert.Equal(t, []string{}, matches[2].SharedInterests)
}

func TestGetPartnerMatchesLimit(t *testing.T) {
	store := newMemProfileStore()
	self, strong, _ := seedMatchProfiles(store)
	svc := NewMatchService(store, nil, time.Minute, matching.NewScorer(matching.DefaultWeights()), 0, zerolog.Nop())

	matches, err := svc.GetPartnerMatches(context.Background(), self.ID, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, strong.ID, matches[0].ProfileID)

	_, err = svc.GetPartnerMatches(context.Background(), uuid.New(), 5)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestGetMyMatchesWithoutProfile(t *testing.T) {
	svc := NewMatchService(newMemProfileStore(), nil, time.Minute, matching.NewScorer(matching.DefaultWeights()), 0, zerolog.Nop())

	resp, err := svc.GetMyMatches(context.Background(), uuid.New(), 0)
	require.NoError(t, err)
	assert.True(t, resp.NeedsProfile)
	assert.Empty(t, resp.Matches)
	assert.NotNil(t, resp.Matches)
}

func TestMatchesAreCachedUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := newMemProfileStore()
	self, _, _ := seedMatchProfiles(store)
	svc := NewMatchService(store, cache.NewRedisCache(client, "test"), time.Minute,
		matching.NewScorer(matching.DefaultWeights()), 10, zerolog.Nop())

	first, err := svc.GetMyMatches(ctx, self.UserID, 0)
	require.NoError(t, err)
	second, err := svc.GetMyMatches(ctx, self.UserID, 0)
	require.NoError(t, err)
	assert.Equal(t, first.Matches, second.Matches)
	assert.Equal(t, 1, store.listAll)

	svc.InvalidateMatches(ctx)
	_, err = svc.GetMyMatches(ctx, self.UserID, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, store.listAll)
}
