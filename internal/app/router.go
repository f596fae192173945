package app

import (
	"mindset_backend/docs"
	"mindset_backend/internal/config"
	"mindset_backend/internal/middleware"
	"mindset_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需令牌)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/token", c.auth.Token)
	}

	// 2. 开启认证时需要设备令牌
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/auth/me", c.auth.Me)

		a.registerStateRoutes(api, c)
		a.registerJourneyRoutes(api, c)
		a.registerWizardRoutes(api, c)
		a.registerBackupRoutes(api, c)
		a.registerNotificationRoutes(api, c)
	}
}

func (a *App) registerStateRoutes(api *gin.RouterGroup, c *controllers) {
	api.GET("/state", c.state.GetState)
	api.DELETE("/state", c.state.ResetApp)
	api.PUT("/profile", c.state.UpdateProfile)

	prefs := api.Group("/preferences")
	{
		prefs.PUT("/language", c.state.SetLanguage)
		prefs.PUT("/theme", c.state.SetTheme)
		prefs.PUT("/reminder", c.state.SetReminder)
	}

	api.GET("/onboarding/quiz", c.state.GetQuiz)
	api.POST("/onboarding", c.state.CompleteOnboarding)
}

func (a *App) registerJourneyRoutes(api *gin.RouterGroup, c *controllers) {
	modules := api.Group("/modules")
	{
		modules.GET("", c.module.List)
		modules.GET("/:id", c.module.Get)
		modules.POST("/:id/start", c.module.Start)
		modules.DELETE("/:id/progress", c.module.Reset)
		modules.GET("/:id/days/:day", c.module.Lesson)
		modules.POST("/:id/days/:day/complete", c.module.CompleteDay)
		modules.GET("/:id/lock", c.module.Lock)
		modules.POST("/:id/skip-wait", c.module.SkipWait)
	}

	api.GET("/journal", c.journal.List)
	api.PUT("/journal/:id/:day", c.journal.Update)
	api.GET("/stats", c.journal.Summary)

	goals := api.Group("/goals")
	{
		goals.GET("", c.goal.List)
		goals.POST("", c.goal.Create)
		goals.PUT("/:id", c.goal.Update)
		goals.DELETE("/:id", c.goal.Delete)
		goals.POST("/:id/toggle", c.goal.Toggle)
	}
}

func (a *App) registerWizardRoutes(api *gin.RouterGroup, c *controllers) {
	sessions := api.Group("/wizard/sessions")
	{
		sessions.POST("", c.wizard.Open)
		sessions.GET("/:id", c.wizard.Get)
		sessions.DELETE("/:id", c.wizard.Close)
		sessions.PUT("/:id/visibility", c.wizard.SetVisible)
		sessions.POST("/:id/confirm-reading", c.wizard.ConfirmReading)
		sessions.POST("/:id/task", c.wizard.SubmitTask)
		sessions.POST("/:id/back", c.wizard.Back)
		sessions.PUT("/:id/reflection", c.wizard.UpdateReflection)
		sessions.POST("/:id/deepen", c.wizard.Deepen)
		sessions.POST("/:id/save", c.wizard.Save)
	}
}

func (a *App) registerBackupRoutes(api *gin.RouterGroup, c *controllers) {
	api.GET("/export", c.export.Download)
	api.POST("/import", c.export.Import)

	archives := api.Group("/export/archives")
	{
		archives.POST("", c.export.Archive)
		archives.GET("/:name", c.export.GetArchive)
		archives.POST("/:name/restore", c.export.RestoreArchive)
	}
}

func (a *App) registerNotificationRoutes(api *gin.RouterGroup, c *controllers) {
	n := api.Group("/notifications")
	{
		n.GET("/permission", c.notification.Permission)
		n.POST("/test", c.notification.Test)
		n.GET("/scheduled", c.notification.Pending)
		n.POST("/scheduled", c.notification.Schedule)
		n.DELETE("/scheduled/:id", c.notification.Cancel)
		n.GET("/ws", c.notification.HandleWS)
	}
}
