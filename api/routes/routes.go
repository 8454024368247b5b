package routes

import (
	"log/slog"

	"github.com/coursify/coursify-backend/internal/config"
	"github.com/coursify/coursify-backend/internal/handlers"
	"github.com/coursify/coursify-backend/internal/middleware"
	"github.com/coursify/coursify-backend/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HandlerDependencies collects everything SetupRouter needs wired in
type HandlerDependencies struct {
	UserAuth  *handlers.AuthHandler
	AdminAuth *handlers.AuthHandler
	Courses   *handlers.CourseHandler
	Purchases *handlers.PurchaseHandler

	// Disjoint verifiers; a user token never opens an admin route.
	UserTokens  middleware.TokenVerifier
	AdminTokens middleware.TokenVerifier
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, log *slog.Logger, prom *observability.Prom, deps HandlerDependencies, metricsReg prometheus.Gatherer) *gin.Engine {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(prom.GinMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metricsReg, promhttp.HandlerOpts{})))

	requireUser := middleware.AuthRequired(deps.UserTokens)
	requireAdmin := middleware.AuthRequired(deps.AdminTokens)

	api := router.Group("/api/v1")

	user := api.Group("/user")
	{
		user.POST("/signup", deps.UserAuth.Signup)
		user.POST("/signin", deps.UserAuth.Signin)
		user.GET("/purchases", requireUser, deps.Purchases.ListPurchases)
	}

	course := api.Group("/course")
	{
		course.GET("/preview", deps.Courses.Preview)
		course.GET("/debug", deps.Courses.Debug)
		course.POST("/purchase", requireUser, deps.Purchases.Purchase)
	}

	admin := api.Group("/admin")
	{
		admin.POST("/signup", deps.AdminAuth.Signup)
		admin.POST("/signin", deps.AdminAuth.Signin)

		protected := admin.Group("")
		protected.Use(requireAdmin)
		{
			protected.POST("/course", deps.Courses.Create)
			protected.PUT("/course/:id", deps.Courses.Update)
			protected.GET("/course/bulk", deps.Courses.ListMine)
			protected.GET("/courses/all", deps.Courses.ListAll)
			protected.GET("/course/:id", deps.Courses.Get)
			protected.DELETE("/course/:id", deps.Courses.Delete)
		}
	}

	return router
}
