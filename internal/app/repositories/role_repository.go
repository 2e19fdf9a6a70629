package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/impactlink/impactlink/internal/app/models"
)

// RoleRepository reads and grants account roles
type RoleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// HasRole reports whether the user holds role
func (r *RoleRepository) HasRole(ctx context.Context, userID uuid.UUID, role models.Role) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)`,
		userID, string(role)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking role: %w", err)
	}
	return exists, nil
}

// GrantRole adds role to the user; granting twice is a no-op
func (r *RoleRepository) GrantRole(ctx context.Context, userID uuid.UUID, role models.Role) error {
	sql, args, err := r.sb.Insert("user_roles").
		Columns("user_id", "role").
		Values(userID, string(role)).
		Suffix("ON CONFLICT (user_id, role) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build grant role query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error granting role: %w", err)
	}
	return nil
}
