package app

import (
	"academic_dashboard/docs"
	"academic_dashboard/internal/middleware"
	"academic_dashboard/internal/model"
	"academic_dashboard/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(&a.Config.JWT, a.services.session))
	{
		authGroup.GET("/session", c.session.Current)
		authGroup.POST("/session/logout", c.session.Logout)
		authGroup.POST("/attachments", c.attachment.Upload)

		// both roles read the posted boards
		authGroup.GET("/assignments", c.assignment.List)
		authGroup.GET("/events", c.event.List)

		studentGroup := authGroup.Group("")
		studentGroup.Use(middleware.RoleMiddleware(model.Student))
		a.registerStudentRoutes(studentGroup, c)

		teacherGroup := authGroup.Group("/teacher")
		teacherGroup.Use(middleware.RoleMiddleware(model.Teacher))
		a.registerTeacherRoutes(teacherGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/session/login", c.session.Login)

		// 由浏览器直接调用, CORS 对任意来源开放
		public.POST("/insights", c.insight.Generate)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/dashboard", c.dashboard.GetStudentDashboard)

	// 通知
	rg.POST("/assignments/visit", c.assignment.Visit)
	rg.POST("/events/visit", c.event.Visit)
	rg.GET("/notifications", c.notification.List)
	rg.GET("/notifications/stream", c.notification.Stream)

	// 成就/反馈
	rg.POST("/achievements", c.achievement.Submit)
	rg.GET("/achievements/my", c.achievement.ListMine)
	rg.POST("/feedback", c.feedback.Submit)
	rg.GET("/feedback/my", c.feedback.ListMine)

	// 科研/实习提交
	rg.POST("/submissions/research", c.submission.SubmitResearch)
	rg.POST("/submissions/internship", c.submission.SubmitInternship)
	rg.GET("/submissions/my", c.submission.ListMine)

	// 成绩分析
	rg.POST("/performance/verify", c.performance.Verify)
}

func (a *App) registerTeacherRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/dashboard", c.dashboard.GetTeacherDashboard)
	rg.GET("/activities", c.dashboard.GetActivities)

	rg.POST("/assignments", c.assignment.Create)
	rg.DELETE("/assignments/:id", c.assignment.Delete)
	rg.POST("/events", c.event.Create)
	rg.DELETE("/events/:id", c.event.Delete)

	rg.GET("/achievements", c.achievement.ListAll)
	rg.GET("/feedback", c.feedback.ListAll)

	// 审核
	rg.GET("/submissions", c.submission.List)
	rg.PATCH("/submissions/:id/status", c.submission.UpdateStatus)

	// 成绩数据集
	rg.POST("/dataset", c.dataset.Upload)
	rg.GET("/dataset", c.dataset.Status)
}
