package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	appAuth "github.com/impactlink/impactlink/internal/app/auth"
	appControllers "github.com/impactlink/impactlink/internal/app/controllers"
	appMigrations "github.com/impactlink/impactlink/internal/app/migrations"
	appRepos "github.com/impactlink/impactlink/internal/app/repositories"
	appRoutes "github.com/impactlink/impactlink/internal/app/routes"
	appServices "github.com/impactlink/impactlink/internal/app/services"
	"github.com/impactlink/impactlink/internal/config"
	"github.com/impactlink/impactlink/internal/db"
	appMiddleware "github.com/impactlink/impactlink/internal/middleware"
	pkgAuth "github.com/impactlink/impactlink/internal/pkg/auth"
	"github.com/impactlink/impactlink/internal/pkg/cache"
	"github.com/impactlink/impactlink/internal/pkg/email"
	"github.com/impactlink/impactlink/internal/pkg/events"
	"github.com/impactlink/impactlink/internal/pkg/filestorage"
	"github.com/impactlink/impactlink/internal/pkg/helpers"
	"github.com/impactlink/impactlink/internal/pkg/logger"
	"github.com/impactlink/impactlink/internal/pkg/metrics"
	"github.com/impactlink/impactlink/internal/pkg/validation"
	"github.com/impactlink/impactlink/internal/pkg/websocket"
	"github.com/impactlink/impactlink/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	AuthzService   *appAuth.AuthorizationService
	FileStorage    *filestorage.LocalStorage
	Metrics        *metrics.Metrics
	Hub            *websocket.Hub
	Publisher      *events.AMQPPublisher
	Redis          *redis.Client // nil when redis is not configured
	Logger         zerolog.Logger
}

// Close releases the connections opened by BuildDependencies, waiting for
// queued notification emails first.
func (d *Dependencies) Close() {
	if d.Hub != nil {
		d.Hub.Stop()
	}
	if d.Services != nil && d.Services.Notifier != nil {
		d.Services.Notifier.Wait()
	}
	if d.Publisher != nil {
		if err := d.Publisher.Close(); err != nil {
			d.Logger.Error().Err(err).Msg("Failed to close AMQP publisher")
		}
	}
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.Error().Err(err).Msg("Failed to close redis client")
		}
	}
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds default data.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	dbPool, err := db.NewPostgresPool(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		dbPool.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	seedOpts := seed.Options{
		AdminEmail:    cfg.Seed.AdminEmail,
		AdminPassword: cfg.Seed.AdminPassword,
	}
	if err := seed.CreateDefaultData(ctx, dbPool, seedOpts, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes infrastructure clients, repositories, services and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	if err := validation.RegisterWithGin(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Metrics = metrics.New()

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.BaseURL()+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	// Redis is optional; without it match results and role lookups are not cached
	var matchCache, roleCache cache.Cache = cache.NoopCache{}, cache.NoopCache{}
	if cfg.Redis.Addr != "" {
		deps.Redis, err = cache.NewRedisClient(ctx, cache.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		matchCache = cache.NewRedisCache(deps.Redis, "matches")
		roleCache = cache.NewRedisCache(deps.Redis, "authz")
		lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis cache connected")
	} else {
		lgr.Warn().Msg("Redis address is empty, caching is disabled")
	}

	deps.Publisher, err = events.NewAMQPPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange, lgr)
	if err != nil {
		deps.Close()
		return nil, err
	}

	deps.Hub = websocket.NewHub(logger.Component("websocket"), cfg.Server.AllowedOrigins)
	go deps.Hub.Run()

	smtpConfig := email.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		BaseURL:  cfg.BaseURL(),
	}
	var mailer email.EmailService
	if smtpConfig.Enabled() {
		mailer = email.NewEmailService(email.NewSMTPSender(smtpConfig, logger.Component("email")), cfg.BaseURL())
	} else {
		lgr.Warn().Msg("SMTP is not configured, notification emails are disabled")
	}

	notifier := appServices.NewNotificationService(deps.Publisher, deps.Hub, mailer, deps.Metrics, logger.Component("notifications"))

	deps.AuthzService = appAuth.NewAuthorizationService(
		deps.Repos.RoleRepository,
		roleCache,
		helpers.ParseDuration(cfg.Redis.RoleCacheTTL, 5*time.Minute),
	)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(appServices.Dependencies{
		Repos:         deps.Repos,
		Authz:         deps.AuthzService,
		JWT:           deps.JWTService,
		Cache:         matchCache,
		MatchCacheTTL: helpers.ParseDuration(cfg.Redis.MatchCacheTTL, 10*time.Minute),
		MatchWeights:  cfg.Matching.Weights,
		MatchLimit:    cfg.Matching.DefaultLimit,
		Storage:       deps.FileStorage,
		Notifier:      notifier,
		Logger:        lgr,
	})

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.AuthzService)

	svc := deps.Services
	deps.Controllers = appRoutes.Controllers{
		Auth:             appControllers.NewAuthController(svc.Auth, lgr),
		Profile:          appControllers.NewProfileController(svc.Profile, lgr),
		Match:            appControllers.NewMatchController(svc.Match),
		Directory:        appControllers.NewDirectoryController(svc.Directory),
		Collaboration:    appControllers.NewCollaborationController(svc.Collaboration, lgr),
		Forum:            appControllers.NewForumController(svc.Forum),
		ResearchQuestion: appControllers.NewResearchQuestionController(svc.ResearchQuestion),
		Event:            appControllers.NewEventController(svc.Event, lgr),
		Resource:         appControllers.NewResourceController(svc.Resource),
		Submission:       appControllers.NewSubmissionController(svc.Submission, int64(cfg.Server.MaxUploadMB)<<20, lgr),
		Admin:            appControllers.NewAdminController(svc.Admin),
		Notification:     appControllers.NewNotificationController(deps.Hub, logger.Component("websocket")),
		Health:           appControllers.NewHealthController(dbPool),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(logger.Component("http")),
		appMiddleware.Metrics(deps.Metrics),
		appMiddleware.CORS(cfg.Server.AllowedOrigins),
	)
	router.MaxMultipartMemory = int64(cfg.Server.MaxUploadMB) << 20

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.Metrics.Handler())

	return router
}
