package routes

import (
	"AgileMoodGo/config"
	"AgileMoodGo/controllers"
	"AgileMoodGo/middleware"
	"AgileMoodGo/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, conf config.Config, client *services.DeepseekClient) {
	authController := controllers.AuthController{}
	userController := controllers.UserController{}
	teamController := controllers.TeamController{}
	emotionController := controllers.EmotionController{}
	feedbackController := controllers.FeedbackController{}
	sprintController := controllers.SprintController{}
	statsController := controllers.StatsController{}
	inviteController := controllers.InviteController{}
	insightController := controllers.NewInsightController(services.NewInsightService(client))

	// Public routes.
	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
	}

	// Authenticated routes.
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware())
	{
		private.GET("/user", userController.GetUser)
		private.PUT("/user", userController.UpdateUser)

		private.GET("/teams/:id", teamController.GetTeam)
		private.POST("/teams/join", teamController.JoinTeam)
		private.GET("/teams/:id/messages", teamController.ListMessages)
		private.POST("/teams/:id/messages", teamController.CreateMessage)

		private.GET("/teams/:id/emotions", emotionController.GetEmotions)
		private.POST("/teams/:id/emotions", emotionController.ReplaceEmotions)
		private.PUT("/teams/:id/emotions", emotionController.ReplaceEmotions)
		private.POST("/emotion_record", emotionController.CreateEmotionRecord)

		private.POST("/feedback", feedbackController.CreateFeedback)

		private.GET("/teams/:id/sprints", sprintController.ListSprints)
		private.POST("/teams/:id/sprints", sprintController.CreateSprint)

		private.GET("/teams/:id/stats", statsController.GetStats)
		private.GET("/teams/:id/export", statsController.ExportReports)
		private.GET("/teams/:id/insight", insightController.GetInsight)
	}

	// Internal routes (operator only).
	internal := r.Group("/internal")
	internal.Use(middleware.InternalAuthMiddleware(conf.InternalAuthToken))
	{
		internal.GET("/invites/generate", inviteController.CreateInviteCode)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
