package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository             *UserRepository
	TokenRepository            *TokenRepository
	RoleRepository             *RoleRepository
	ProfileRepository          *ProfileRepository
	CollaborationRepository    *CollaborationRepository
	ForumRepository            *ForumRepository
	ResearchQuestionRepository *ResearchQuestionRepository
	EventRepository            *EventRepository
	ResourceRepository         *ResourceRepository
	SubmissionRepository       *SubmissionRepository
	StatsRepository            *StatsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:             NewUserRepository(db),
		TokenRepository:            NewTokenRepository(db),
		RoleRepository:             NewRoleRepository(db),
		ProfileRepository:          NewProfileRepository(db),
		CollaborationRepository:    NewCollaborationRepository(db),
		ForumRepository:            NewForumRepository(db),
		ResearchQuestionRepository: NewResearchQuestionRepository(db),
		EventRepository:            NewEventRepository(db),
		ResourceRepository:         NewResourceRepository(db),
		SubmissionRepository:       NewSubmissionRepository(db),
		StatsRepository:            NewStatsRepository(db),
	}
}

// rowScanner is implemented by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// authorColumns is the shallow profile projection joined onto content rows.
func authorColumns(alias string) []string {
	return []string{
		alias + ".id",
		alias + ".name",
		alias + ".profile_type",
		alias + ".avatar_url",
	}
}
