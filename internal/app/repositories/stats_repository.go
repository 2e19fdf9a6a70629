package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/impactlink/impactlink/internal/app/models"
)

// StatsRepository aggregates dashboard counters
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// DashboardStats counts the main entities in a single round trip
func (r *StatsRepository) DashboardStats(ctx context.Context, now time.Time) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM profiles WHERE profile_type = 'student'),
			(SELECT COUNT(*) FROM profiles WHERE profile_type = 'researcher'),
			(SELECT COUNT(*) FROM profiles WHERE profile_type = 'agency'),
			(SELECT COUNT(*) FROM collaborations WHERE status = 'pending'),
			(SELECT COUNT(*) FROM collaborations WHERE status = 'accepted'),
			(SELECT COUNT(*) FROM events),
			(SELECT COUNT(*) FROM events WHERE start_date > $1),
			(SELECT COUNT(*) FROM event_registrations),
			(SELECT COUNT(*) FROM resources),
			(SELECT COUNT(*) FROM forum_posts),
			(SELECT COUNT(*) FROM research_questions WHERE status = 'open'),
			(SELECT COUNT(*) FROM submissions WHERE status = 'pending')`, now).Scan(
		&stats.Students, &stats.Researchers, &stats.Agencies,
		&stats.PendingCollaborations, &stats.AcceptedConnections,
		&stats.Events, &stats.UpcomingEvents, &stats.Registrations,
		&stats.Resources, &stats.ForumPosts, &stats.OpenQuestions, &stats.PendingSubmissions)
	if err != nil {
		return nil, fmt.Errorf("error loading dashboard stats: %w", err)
	}
	return stats, nil
}
