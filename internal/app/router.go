package app

import (
	"sanvii_backend/docs"
	"sanvii_backend/internal/config"
	"sanvii_backend/internal/middleware"
	"sanvii_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由（无需登录）
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg, repos.session))
	{
		authGroup.POST("/auth/logout", c.auth.Logout)
		authGroup.GET("/auth/me", c.auth.Me)

		authGroup.GET("/profile", c.profile.Get)
		authGroup.PATCH("/profile/onboarding", c.profile.UpdateStep)
		authGroup.POST("/profile/onboarding/complete", c.profile.Complete)

		authGroup.GET("/dashboard", c.dashboard.Overview)

		authGroup.GET("/chat/messages", c.chat.History)
		authGroup.POST("/chat/messages", c.chat.Send)

		authGroup.GET("/paths", c.path.List)
		authGroup.POST("/paths", c.path.Create)
		authGroup.POST("/paths/generate", c.path.Generate)
		authGroup.GET("/paths/suggestions", c.path.Suggestions)
		authGroup.POST("/paths/:id/select", c.path.Select)
		authGroup.DELETE("/paths/:id", c.path.Delete)

		authGroup.GET("/topics/:topicId/chat", c.lesson.GetChat)
		authGroup.POST("/topics/:topicId/chat", c.lesson.SendMessage)
		authGroup.POST("/topics/:topicId/blockers", c.lesson.AddBlocker)
		authGroup.POST("/topics/:topicId/blockers/:blockerId/resolve", c.lesson.ResolveBlocker)
		authGroup.POST("/topics/:topicId/skill-check", c.lesson.StartSkillCheck)
		authGroup.POST("/topics/:topicId/skill-check/answer", c.lesson.SubmitAnswer)

		authGroup.POST("/jobs/search", c.job.Search)

		authGroup.GET("/resume/analysis", c.resume.Latest)
		authGroup.POST("/resume/analyze", c.resume.Analyze)

		authGroup.GET("/interview/ws", c.interview.Connect)
	}
}
