package routes

import (
	"net/http"

	"github.com/ser6eevich/formafit/controllers"
	"github.com/ser6eevich/formafit/middlewares"
	"github.com/ser6eevich/formafit/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, llm services.LLMClient, hub *services.RealtimeHub) {
	meals := services.NewMealService(llm, hub)
	workouts := services.NewWorkoutService(llm, hub)
	chat := services.NewChatService(llm)

	auth := controllers.NewAuthController()
	users := controllers.NewUserController()
	nutrition := controllers.NewNutritionController(meals)
	workout := controllers.NewWorkoutController(workouts)
	chatCtl := controllers.NewChatController(chat)
	exercises := controllers.NewExerciseController()
	notifications := controllers.NewNotificationController()
	realtime := controllers.NewRealtimeController(hub)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/auth/telegram", auth.TelegramLogin)
	router.GET("/ws", realtime.Serve)

	api := router.Group("/api")
	api.Use(middlewares.TelegramAuth())
	{
		api.GET("/user", users.GetProfile)
		api.POST("/user", users.SaveProfile)

		api.GET("/nutrition", nutrition.GetToday)
		api.GET("/nutrition/history", nutrition.GetHistory)
		api.POST("/nutrition/analyze", nutrition.Analyze)
		api.POST("/nutrition/vision", nutrition.Vision)

		api.GET("/exercises", exercises.List)

		api.POST("/workout/generate", workout.Generate)
		api.POST("/workout/manual", workout.CreateManual)
		api.POST("/workout/complete", workout.Complete)
		api.GET("/workout/history", workout.History)

		api.GET("/chat", chatCtl.Messages)
		api.POST("/chat", chatCtl.Send)
		api.DELETE("/chat", chatCtl.Clear)

		api.GET("/notifications", notifications.List)
		api.POST("/notifications", notifications.MarkRead)
	}
}
