package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/smartedurural/smartedu-backend/internal/config"
	"github.com/smartedurural/smartedu-backend/internal/handler"
	"github.com/smartedurural/smartedu-backend/internal/middleware"
	"github.com/smartedurural/smartedu-backend/internal/model"
	"github.com/smartedurural/smartedu-backend/internal/response"
	"github.com/smartedurural/smartedu-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Test      *handler.TestHandler
	Teacher   *handler.TeacherHandler
	Dashboard *handler.DashboardHandler
	Resource  *handler.ResourceHandler
	Mentor    *handler.MentorHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/logout", middleware.RequireAuth(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireAuth(authService), handlers.Auth.Me)
	}

	// ─── 2. Catalog Reads (Any Authenticated Role) ─────────────────────
	catalog := router.Group("/api/v1")
	catalog.Use(middleware.RequireAuth(authService))
	{
		catalog.GET("/tests", handlers.Test.List)
		catalog.GET("/tests/:id", handlers.Test.Get)
		catalog.GET("/tests/:id/leaderboard", handlers.Test.Leaderboard)
		catalog.GET("/subjects", handlers.Test.Subjects)
		catalog.GET("/leaderboard/class", handlers.Test.ClassLeaderboard)
	}

	// ─── 3. Student Group (JWT + Student Role) ─────────────────────────
	studentAPI := router.Group("/api/v1")
	studentAPI.Use(middleware.RequireRole(authService, model.RoleStudent))
	{
		studentAPI.POST("/tests/:id/start", handlers.Test.Start)
		studentAPI.POST("/tests/:id/submit", handlers.Test.Submit)
		studentAPI.GET("/completed", handlers.Test.Completed)
		studentAPI.GET("/submissions", handlers.Test.Submissions)
		studentAPI.GET("/dashboard/student", handlers.Dashboard.Student)
		studentAPI.POST("/resources/:id/access", handlers.Resource.RecordAccess)
	}

	// ─── 4. Parent Group (JWT + Parent Role) ───────────────────────────
	parentAPI := router.Group("/api/v1")
	parentAPI.Use(middleware.RequireRole(authService, model.RoleParent))
	{
		parentAPI.GET("/dashboard/parent", handlers.Dashboard.Parent)
	}

	// ─── 5. Teacher Group (JWT + Teacher Role) ─────────────────────────
	teacherAPI := router.Group("/api/v1/teacher")
	teacherAPI.Use(middleware.RequireRole(authService, model.RoleTeacher))
	{
		teacherAPI.POST("/tests", handlers.Teacher.PublishTest)
		teacherAPI.GET("/students", handlers.Teacher.Students)
		teacherAPI.GET("/submissions", handlers.Teacher.Submissions)
		teacherAPI.POST("/submissions/:id/score", handlers.Teacher.OverrideScore)
		teacherAPI.POST("/reset", handlers.Teacher.Reset)
	}

	// ─── 6. Mentor Group ───────────────────────────────────────────────
	mentor := router.Group("/api/v1/mentor")
	mentor.Use(middleware.RequireAuth(authService))
	{
		mentor.POST("/ask", handlers.Mentor.Ask)
	}

	// ─── 7. WebSocket Group (WS Auth via ?token=) ──────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireWSAuth(authService))
	{
		ws.GET("/mentor", handlers.Mentor.Chat)
	}

	return router
}
