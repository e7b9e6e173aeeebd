package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mutqin-client/internal/guard"
	"mutqin-client/internal/shared/middleware"
	"mutqin-client/internal/shared/webutil"
	"mutqin-client/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		webutil.EnsureSession(c.Config.App.CookieSecure),
	)

	router.SetHTMLTemplate(loadTemplates())

	// Health check
	router.GET("/health", healthCheckHandler(c))

	// Root lands on the dashboard; the guard bounces anonymous visitors
	// to the login page.
	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/dashboard")
	})

	setupAuthRoutes(router, c)
	setupStudentRoutes(router, c)
	setupTutorRoutes(router, c)

	return router
}

// ========================================
// AUTH ROUTES (public)
// ========================================
func setupAuthRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/login", c.AuthHandler.ShowLogin)
	router.POST("/login", c.AuthHandler.Login)
	router.GET("/signup", c.AuthHandler.ShowSignup)
	router.POST("/signup", c.AuthHandler.Signup)
	router.POST("/logout", c.AuthHandler.Logout)

	oauth := router.Group("/oauth/google")
	{
		oauth.GET("", c.AuthHandler.GoogleStart)
		oauth.GET("/callback", c.AuthHandler.GoogleCallback)
	}
}

// ========================================
// AUTHENTICATED ROUTES (any role)
// ========================================
func setupStudentRoutes(router *gin.Engine, c *container.Container) {
	authed := router.Group("")
	authed.Use(guard.Middleware(c.Store, c.RoleResolver))
	{
		authed.GET("/dashboard", c.DashboardHandler.Student)

		authed.GET("/profile", c.ProfileHandler.Show)
		authed.POST("/profile", c.ProfileHandler.Update)
		authed.POST("/profile/delete", c.ProfileHandler.Delete)

		authed.GET("/tutors", c.TutorHandler.List)
		authed.GET("/tutors/:id", c.TutorHandler.Detail)

		authed.POST("/sessions/book", c.SessionHandler.Book)
		authed.GET("/sessions/confirm", c.SessionHandler.ShowConfirm)
		authed.POST("/sessions/confirm", c.SessionHandler.Confirm)

		authed.GET("/chat", c.VoiceChatHandler.Show)
		authed.GET("/chat/go", c.VoiceChatHandler.Go)
	}
}

// ========================================
// TUTOR-ONLY ROUTES
// ========================================
func setupTutorRoutes(router *gin.Engine, c *container.Container) {
	tutor := router.Group("")
	tutor.Use(guard.Middleware(c.Store, c.RoleResolver, guard.RoleTutor))
	{
		tutor.GET("/tutor/dashboard", c.DashboardHandler.Tutor)
		tutor.GET("/calendly", c.CalendlyHandler.Show)
		tutor.POST("/calendly", c.CalendlyHandler.Update)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services": gin.H{
				"voice_chat": appCtx.VoiceChatService.Available(),
			},
		})
	}
}
