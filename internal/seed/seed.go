package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	appRepos "github.com/impactlink/impactlink/internal/app/repositories"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/auth"
)

// Options controls the default admin account. An empty AdminEmail skips it.
type Options struct {
	AdminEmail    string
	AdminPassword string
}

func strPtr(s string) *string { return &s }

var defaultTopics = []appModels.ForumTopic{
	{Name: "Kinship Care", Description: strPtr("Supporting grandparents and relatives raising children"), Category: strPtr("Family")},
	{Name: "Foster Care Research", Description: strPtr("Findings, methods and open datasets"), Category: strPtr("Research")},
	{Name: "Agency Partnerships", Description: strPtr("Finding academic partners for program evaluation"), Category: strPtr("Collaboration")},
	{Name: "Student Projects", Description: strPtr("Practicum ideas, capstones and volunteering"), Category: strPtr("Students")},
}

var defaultResources = []appModels.Resource{
	{
		Title:        "Community-Based Participatory Research Toolkit",
		Description:  strPtr("Step-by-step guide to co-designing studies with community partners"),
		ResourceType: appModels.ResourceToolkit,
		Format:       appModels.FormatPDF,
		Category:     strPtr("Research Methods"),
		Tags:         []string{"cbpr", "methods"},
	},
	{
		Title:        "Trauma-Informed Practice Workshop",
		Description:  strPtr("Recorded workshop for practitioners and student volunteers"),
		ResourceType: appModels.ResourceWorkshop,
		Format:       appModels.FormatWebinar,
		Category:     strPtr("Practice"),
		Tags:         []string{"trauma-informed", "training"},
	},
	{
		Title:        "Program Evaluation Basics",
		Description:  strPtr("Introductory reading on logic models and outcome measurement"),
		ResourceType: appModels.ResourceReading,
		Format:       appModels.FormatArticle,
		Category:     strPtr("Evaluation"),
		Tags:         []string{"evaluation", "logic-model"},
	},
}

// CreateDefaultData creates the admin account, forum topics and starter
// resources if they don't exist. Errors are collected so one failure does not
// block the rest.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, opts Options, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)

	lgr.Info().Msg("Checking/Creating default data (admin, forum topics, resources)...")
	var finalErr error

	if opts.AdminEmail != "" {
		if err := ensureAdmin(ctx, repos, opts, lgr); err != nil {
			lgr.Error().Err(err).Str("email", opts.AdminEmail).Msg("Error creating default admin")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for i := range defaultTopics {
		topic := defaultTopics[i]
		err := repos.ForumRepository.CreateTopic(ctx, &topic)
		if err != nil && !errors.Is(err, apperrors.ErrConflict) {
			lgr.Error().Err(err).Str("topic", topic.Name).Msg("Error creating forum topic")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// Resource titles are not unique, only seed an empty library
	_, total, err := repos.ResourceRepository.List(ctx, dto.ResourceFilter{Page: 1, PageSize: 1})
	switch {
	case err != nil:
		lgr.Error().Err(err).Msg("Error counting resources")
		finalErr = errors.Join(finalErr, err)
	case total == 0:
		for i := range defaultResources {
			res := defaultResources[i]
			if err := repos.ResourceRepository.Create(ctx, &res); err != nil {
				lgr.Error().Err(err).Str("title", res.Title).Msg("Error creating resource")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check/creation complete.")
	}
	return finalErr
}

func ensureAdmin(ctx context.Context, repos *appRepos.Repositories, opts Options, lgr zerolog.Logger) error {
	user, err := repos.UserRepository.GetByEmail(ctx, opts.AdminEmail)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		if opts.AdminPassword == "" {
			lgr.Warn().Msg("Seed admin email set without a password, skipping admin creation")
			return nil
		}
		hash, hashErr := auth.HashPassword(opts.AdminPassword)
		if hashErr != nil {
			return hashErr
		}
		user = &appModels.User{Email: opts.AdminEmail, PasswordHash: hash}
		if err := repos.UserRepository.Create(ctx, user); err != nil {
			return err
		}
		lgr.Info().Str("email", opts.AdminEmail).Msg("Default admin account created")
	} else if err != nil {
		return err
	}

	return repos.RoleRepository.GrantRole(ctx, user.ID, appModels.RoleAdmin)
}
