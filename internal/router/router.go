package router

import (
	"github.com/blues/vds/internal/config"
	"github.com/blues/vds/internal/handler"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, cfg *config.Config) (*gin.Engine, *handler.AdminHandler) {
	r := gin.Default()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "volunteer-deployment-service",
		})
	})

	adminHandler := handler.NewAdminHandler(db, cfg)

	// API版本组
	v1 := r.Group("/api/v1")
	{
		// 项目相关路由
		projectHandler := handler.NewProjectHandler(db)
		affectationHandler := handler.NewAffectationHandler(db)
		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.SubmitProject)
			projects.GET("", projectHandler.GetProjects)
			projects.GET("/public", projectHandler.GetPublicProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.POST("/:id/validate", projectHandler.ValidateProject)
			projects.POST("/:id/close", projectHandler.CloseProject)
			projects.GET("/:id/stats", projectHandler.GetProjectStats)
			projects.GET("/:id/affectations", affectationHandler.GetProjectAffectations)
			projects.DELETE("/:id/affectations/:aid", affectationHandler.Unassign)
		}

		// 申请相关路由
		candidatureHandler := handler.NewCandidatureHandler(db)
		candidatures := v1.Group("/candidatures")
		{
			candidatures.POST("", candidatureHandler.SubmitCandidature)
			candidatures.GET("", candidatureHandler.GetCandidatures)
			candidatures.GET("/orphans", candidatureHandler.GetOrphanAccepted)
			candidatures.POST("/:id/accept", candidatureHandler.AcceptCandidature)
			candidatures.POST("/:id/reject", candidatureHandler.RejectCandidature)
			candidatures.PUT("/:id/status", candidatureHandler.UpdateCandidatureStatus)
		}

		// 合作伙伴相关路由
		partnerHandler := handler.NewPartnerHandler(db)
		partners := v1.Group("/partners")
		{
			partners.POST("", partnerHandler.RegisterPartner)
			partners.GET("/:id", partnerHandler.GetPartner)
			partners.PUT("/:id/types", partnerHandler.UpdatePartnerTypes)
			partners.GET("/:id/permissions", partnerHandler.GetPartnerPermissions)
		}

		// 志愿者相关路由
		volunteerHandler := handler.NewVolunteerHandler(db)
		volunteers := v1.Group("/volunteers")
		{
			volunteers.POST("", volunteerHandler.CreateVolunteer)
			volunteers.GET("", volunteerHandler.GetVolunteers)
			volunteers.GET("/:id", volunteerHandler.GetVolunteer)
		}

		// 管理员会话，绑定截止日期监控器的生命周期
		admin := v1.Group("/admin")
		{
			admin.POST("/session", adminHandler.OpenSession)
			admin.DELETE("/session", adminHandler.CloseSession)
		}
	}

	return r, adminHandler
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
