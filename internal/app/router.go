package app

import (
	"learner_insights_backend/docs"
	"learner_insights_backend/internal/config"
	"learner_insights_backend/internal/middleware"
	"learner_insights_backend/internal/model"
	"learner_insights_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	router.GET("/api/health", c.health.HealthCheck)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		// 学生/通用 授权接口
		a.registerLearnerRoutes(authGroup, c)

		// 教师/管理员接口
		a.registerStaffRoutes(authGroup, c)
	}
}

func (a *App) registerLearnerRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/insights/me", c.insights.GetMyInsights)
	group.GET("/learners/:userId/insights", c.insights.GetLearnerInsights)
	group.GET("/quiz/results", c.quizSession.ListResults)

	quiz := group.Group("/quiz/sessions")
	{
		quiz.POST("", c.quizSession.StartSession)
		quiz.GET("/:id", c.quizSession.GetSession)
		quiz.POST("/:id/answers", c.quizSession.SubmitAnswer)
		quiz.PUT("/:id/difficulty", c.quizSession.SetDifficulty)
		quiz.DELETE("/:id", c.quizSession.EndSession)
	}
}

func (a *App) registerStaffRoutes(group *gin.RouterGroup, c *controllers) {
	// 管理员拥有所有教师权限
	staff := group.Group("/admin")
	staff.Use(middleware.RoleMiddleware(model.Teacher))
	{
		staff.POST("/predictions/generate", c.prediction.Generate)

		staff.GET("/learners/:userId/insights", c.insights.GetLearnerInsights)
		staff.GET("/insights/risk-distribution", c.insights.GetRiskDistribution)

		staff.GET("/alerts", c.alert.ListAlerts)
		staff.POST("/alerts/:id/dismiss", c.alert.DismissAlert)
		staff.GET("/alerts/ws", c.alert.HandleWS)

		staff.POST("/assessments/:id/roadmap", c.roadmap.GenerateRoadmap)
		staff.GET("/assessments/:id/roadmap", c.roadmap.GetRoadmap)
	}
}
