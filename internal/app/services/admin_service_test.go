package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
)

type fakeStats struct{ at time.Time }

func (f *fakeStats) DashboardStats(_ context.Context, now time.Time) (*models.DashboardStats, error) {
	f.at = now
	return &models.DashboardStats{Students: 2, Agencies: 1}, nil
}

type deleteRecorder struct {
	deleted []uuid.UUID
}

func (d *deleteRecorder) Delete(_ context.Context, id uuid.UUID) error {
	d.deleted = append(d.deleted, id)
	return nil
}

func (d *deleteRecorder) DeleteTopic(ctx context.Context, id uuid.UUID) error {
	return d.Delete(ctx, id)
}

func TestAdminDeletesRequireConfirmation(t *testing.T) {
	ctx := context.Background()
	profiles, eventsStore, resources, topics := &deleteRecorder{}, &deleteRecorder{}, &deleteRecorder{}, &deleteRecorder{}
	matches := &countingInvalidator{}
	svc := NewAdminService(&fakeStats{}, profiles, eventsStore, resources, topics, matches, time.Now, zerolog.Nop())
	admin, id := uuid.New(), uuid.New()

	deletes := map[string]struct {
		call  func(confirm bool) error
		store *deleteRecorder
	}{
		"profile":  {func(c bool) error { return svc.DeleteProfile(ctx, admin, id, c) }, profiles},
		"event":    {func(c bool) error { return svc.DeleteEvent(ctx, admin, id, c) }, eventsStore},
		"resource": {func(c bool) error { return svc.DeleteResource(ctx, admin, id, c) }, resources},
		"topic":    {func(c bool) error { return svc.DeleteTopic(ctx, admin, id, c) }, topics},
	}

	for name, d := range deletes {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, d.call(false), apperrors.ErrConfirmRequired)
			assert.Empty(t, d.store.deleted)

			require.NoError(t, d.call(true))
			assert.Equal(t, []uuid.UUID{id}, d.store.deleted)
		})
	}
	assert.Equal(t, 1, matches.n)
}

func TestDashboardStatsUsesClock(t *testing.T) {
	now := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	stats := &fakeStats{}
	svc := NewAdminService(stats, nil, nil, nil, nil, nil, func() time.Time { return now }, zerolog.Nop())

	got, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, got.Students)
	assert.Equal(t, now, stats.at)
}
