package main

import (
	"context"

	"github.com/ser6eevich/formafit/config"
	"github.com/ser6eevich/formafit/routes"
	"github.com/ser6eevich/formafit/services"
	"github.com/ser6eevich/formafit/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.InitLogger()
	config.Load()
	config.InitDB()

	if config.App.S3Bucket != "" {
		if err := utils.InitS3(config.App.S3Region); err != nil {
			config.Log.Warnf("S3 disabled: %v", err)
		}
	}

	if err := services.SeedExercises(); err != nil {
		config.Log.Fatalf("Failed to seed exercises: %v", err)
	}

	llm, err := services.NewLLMClient(context.Background())
	if err != nil {
		config.Log.Fatalf("Failed to init LLM client: %v", err)
	}

	hub := services.NewRealtimeHub()

	reminders := services.StartReminders(hub)
	defer reminders.Stop()

	router := gin.Default()
	routes.SetupRoutes(router, llm, hub)

	config.Log.Infof("Server starting on port %s", config.App.Port)
	if err := router.Run(":" + config.App.Port); err != nil {
		config.Log.Fatalf("Server failed: %v", err)
	}
}
