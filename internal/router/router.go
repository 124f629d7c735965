package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/classdesk/classdesk-backend/internal/config"
	"github.com/classdesk/classdesk-backend/internal/handler"
	"github.com/classdesk/classdesk-backend/internal/middleware"
	"github.com/classdesk/classdesk-backend/internal/response"
	"github.com/classdesk/classdesk-backend/internal/store"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	System     *handler.SystemHandler
	Assignment *handler.AssignmentHandler
	Submission *handler.SubmissionHandler
}

// SetupRouter configures the Gin engine: CORS, request IDs, the /api data
// routes, and static asset fallback for everything else.
func SetupRouter(
	handlers *Handlers,
	kv store.KV,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so classroom pages work from any host.
	// Preflight OPTIONS requests are answered 204 by the middleware.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally.
	router.Use(response.RequestIDMiddleware())

	// ─── API ───────────────────────────────────────────────────────────
	api := router.Group("/api")
	{
		api.GET("", handlers.System.Health)
		api.GET("/health", handlers.System.Health)

		data := api.Group("", middleware.RequireStorage(kv))
		{
			data.GET("/assignments", handlers.Assignment.ListAssignments)
			data.POST("/assignments", handlers.Assignment.CreateAssignment)
			data.GET("/submissions", handlers.Submission.ListSubmissions)
			data.POST("/submissions", handlers.Submission.CreateSubmission)
		}
	}

	// ─── Fallback ──────────────────────────────────────────────────────
	// Unrecognized /api paths answer the JSON 404; anything else is served
	// from the static site directory.
	staticFS := http.Dir(cfg.StaticDir)
	cacheStatic := middleware.CacheControl(3600)
	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/api" || strings.HasPrefix(path, "/api/") {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		cacheStatic(c)
		c.FileFromFS(path, staticFS)
	})

	return router
}
