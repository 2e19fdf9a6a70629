package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/impactlink/impactlink/internal/app/controllers"
	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/middleware"
)

// Controllers groups every HTTP controller mounted by SetupRouter
type Controllers struct {
	Auth             *controllers.AuthController
	Profile          *controllers.ProfileController
	Match            *controllers.MatchController
	Directory        *controllers.DirectoryController
	Collaboration    *controllers.CollaborationController
	Forum            *controllers.ForumController
	ResearchQuestion *controllers.ResearchQuestionController
	Event            *controllers.EventController
	Resource         *controllers.ResourceController
	Submission       *controllers.SubmissionController
	Admin            *controllers.AdminController
	Notification     *controllers.NotificationController
	Health           *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	c Controllers,
	authMiddleware *middleware.AuthMiddleware,
	metricsHandler http.Handler,
) {
	router.GET("/ping", c.Health.Ping)
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	// Browsers cannot set headers on the upgrade request, JWTAuth also reads ?access_token
	router.GET("/ws/notifications", authMiddleware.JWTAuth(), c.Notification.Connect)

	// API version group
	v1 := router.Group("/api/v1")
	v1.GET("/health", c.Health.Health)

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
		auth.POST("/refresh", c.Auth.RefreshToken)
	}

	// --- Public read routes, personalised when a token is present ---
	public := v1.Group("")
	public.Use(authMiddleware.OptionalAuth())
	{
		public.GET("/profiles", c.Profile.ListProfiles)
		public.GET("/profiles/:id", c.Profile.GetProfile)

		directory := public.Group("/directory")
		{
			directory.GET("", c.Directory.Search)
			directory.GET("/students", c.Directory.SearchType(models.ProfileTypeStudent))
			directory.GET("/researchers", c.Directory.SearchType(models.ProfileTypeResearcher))
			directory.GET("/agencies", c.Directory.SearchType(models.ProfileTypeAgency))
		}

		forum := public.Group("/forum")
		{
			forum.GET("/topics", c.Forum.ListTopics)
			forum.GET("/topics/:id", c.Forum.GetTopic)
			forum.GET("/topics/:id/posts", c.Forum.ListPosts)
			forum.GET("/posts", c.Forum.ListPosts)
			forum.GET("/posts/:id", c.Forum.GetPost)
		}

		public.GET("/research-questions", c.ResearchQuestion.ListQuestions)
		public.GET("/research-questions/:id", c.ResearchQuestion.GetQuestion)

		public.GET("/events", c.Event.ListEvents)
		public.GET("/events/:id", c.Event.GetEvent)

		public.GET("/resources", c.Resource.ListResources)
		public.GET("/resources/:id", c.Resource.GetResource)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", c.Auth.Logout)

		me := authenticated.Group("/me")
		{
			me.GET("", c.Auth.Me)
			me.GET("/profile", c.Profile.GetMyProfile)
			me.GET("/matches", c.Match.GetMyMatches)
			me.GET("/events", c.Event.ListMyEvents)
			me.GET("/bookmarks", c.Resource.ListBookmarks)
			me.GET("/submissions", c.Submission.ListMySubmissions)
		}

		profiles := authenticated.Group("/profiles")
		{
			profiles.POST("", c.Profile.CreateProfile)
			profiles.PUT("/:id", c.Profile.UpdateProfile)
			profiles.DELETE("/:id", c.Profile.DeleteProfile)
			profiles.GET("/:id/matches", c.Match.GetProfileMatches)
		}

		collaborations := authenticated.Group("/collaborations")
		{
			collaborations.POST("", c.Collaboration.SendRequest)
			collaborations.GET("/connections", c.Collaboration.ListConnections)
			collaborations.GET("/incoming", c.Collaboration.ListIncoming)
			collaborations.GET("/outgoing", c.Collaboration.ListOutgoing)
			collaborations.GET("/status/:profileId", c.Collaboration.ConnectionStatus)
			collaborations.GET("/:id", c.Collaboration.GetCollaboration)
			collaborations.PATCH("/:id", c.Collaboration.Respond)
		}

		forum := authenticated.Group("/forum")
		{
			forum.POST("/topics/:id/posts", c.Forum.CreatePost)
			forum.DELETE("/posts/:id", c.Forum.DeletePost)
			forum.POST("/posts/:id/replies", c.Forum.CreateReply)
			forum.DELETE("/replies/:id", c.Forum.DeleteReply)
		}

		questions := authenticated.Group("/research-questions")
		{
			questions.POST("", c.ResearchQuestion.CreateQuestion)
			questions.PATCH("/:id/status", c.ResearchQuestion.UpdateStatus)
			questions.DELETE("/:id", c.ResearchQuestion.DeleteQuestion)
		}

		authenticated.POST("/events/:id/register", c.Event.Register)
		authenticated.DELETE("/events/:id/register", c.Event.CancelRegistration)

		authenticated.POST("/resources/:id/bookmark", c.Resource.ToggleBookmark)
		authenticated.DELETE("/resources/:id/bookmark", c.Resource.RemoveBookmark)

		submissions := authenticated.Group("/submissions")
		{
			submissions.POST("", c.Submission.CreateSubmission)
			submissions.GET("/:id", c.Submission.GetSubmission)
			submissions.DELETE("/:id", c.Submission.DeleteSubmission)
		}
	}

	// --- Admin routes ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.AdminRequired())
	{
		admin.GET("/stats", c.Admin.DashboardStats)

		// Profile edits share the owner handler; the service lets admins through
		admin.PUT("/profiles/:id", c.Profile.UpdateProfile)
		admin.DELETE("/profiles/:id", c.Admin.DeleteProfile)

		admin.POST("/events", c.Event.CreateEvent)
		admin.PUT("/events/:id", c.Event.UpdateEvent)
		admin.DELETE("/events/:id", c.Admin.DeleteEvent)
		admin.GET("/events/:id/registrations", c.Event.ListRegistrations)

		admin.POST("/resources", c.Resource.CreateResource)
		admin.PUT("/resources/:id", c.Resource.UpdateResource)
		admin.DELETE("/resources/:id", c.Admin.DeleteResource)

		admin.POST("/forum/topics", c.Forum.CreateTopic)
		admin.PUT("/forum/topics/:id", c.Forum.UpdateTopic)
		admin.DELETE("/forum/topics/:id", c.Admin.DeleteTopic)

		admin.PATCH("/research-questions/:id/status", c.ResearchQuestion.UpdateStatus)

		admin.GET("/submissions", c.Submission.ListSubmissions)
		admin.PATCH("/submissions/:id/review", c.Submission.ReviewSubmission)
	}
}
