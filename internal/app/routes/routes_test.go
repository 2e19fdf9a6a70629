package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impactlink/impactlink/internal/app/controllers"
	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/services"
	"github.com/impactlink/impactlink/internal/middleware"
	"github.com/impactlink/impactlink/internal/pkg/auth"
	"github.com/impactlink/impactlink/internal/pkg/metrics"
)

type admins map[uuid.UUID]bool

func (a admins) IsAdmin(_ context.Context, userID uuid.UUID) (bool, error) {
	return a[userID], nil
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

type statsOnly struct {
	services.AdminService
}

func (statsOnly) DashboardStats(context.Context) (*models.DashboardStats, error) {
	return &models.DashboardStats{}, nil
}

func newTestRouter(t *testing.T, adminID uuid.UUID) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwt := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "routes-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "impactlink.test",
	})
	log := zerolog.Nop()

	c := Controllers{
		Auth:             controllers.NewAuthController(nil, log),
		Profile:          controllers.NewProfileController(nil, log),
		Match:            controllers.NewMatchController(nil),
		Directory:        controllers.NewDirectoryController(nil),
		Collaboration:    controllers.NewCollaborationController(nil, log),
		Forum:            controllers.NewForumController(nil),
		ResearchQuestion: controllers.NewResearchQuestionController(nil),
		Event:            controllers.NewEventController(nil, log),
		Resource:         controllers.NewResourceController(nil),
		Submission:       controllers.NewSubmissionController(nil, 0, log),
		Admin:            controllers.NewAdminController(statsOnly{}),
		Notification:     controllers.NewNotificationController(nil, log),
		Health:           controllers.NewHealthController(okPinger{}),
	}

	r := gin.New()
	// Registration panics on conflicting routes
	require.NotPanics(t, func() {
		SetupRouter(r, c, middleware.NewAuthMiddleware(jwt, admins{adminID: true}), metrics.New().Handler())
	})
	return r, jwt
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOperationalRoutes(t *testing.T) {
	r, _ := newTestRouter(t, uuid.New())

	assert.Equal(t, http.StatusOK, get(r, "/ping", "").Code)
	assert.Equal(t, http.StatusOK, get(r, "/api/v1/health", "").Code)
	assert.Equal(t, http.StatusOK, get(r, "/metrics", "").Code)
}

func TestProtectedGroups(t *testing.T) {
	adminID := uuid.New()
	r, jwt := newTestRouter(t, adminID)

	userPair, err := jwt.GenerateTokenPair(uuid.New(), "member@example.org")
	require.NoError(t, err)
	adminPair, err := jwt.GenerateTokenPair(adminID, "admin@example.org")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/v1/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/v1/collaborations/incoming", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/ws/notifications", "").Code)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/v1/admin/stats", "").Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/api/v1/admin/stats", userPair.AccessToken).Code)
	assert.Equal(t, http.StatusOK, get(r, "/api/v1/admin/stats", adminPair.AccessToken).Code)
}
