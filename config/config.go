package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ser6eevich/formafit/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Settings collects everything read from the environment besides the DB DSN.
type Settings struct {
	Port            string
	JWTSecret       string
	BotToken        string
	WebAppURL       string
	LLMProvider     string // "openai"|"gemini"
	OpenAIKey       string
	GeminiKey       string
	S3Bucket        string
	S3Region        string
	CloudFrontURL   string
	DefaultTZOffset int // minutes, JS getTimezoneOffset convention
}

var App Settings

func Load() {
	if err := godotenv.Load(); err != nil {
		Log.Infof("no .env file, relying on environment")
	}

	App = Settings{
		Port:            getEnv("PORT", "8080"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		BotToken:        os.Getenv("TELEGRAM_BOT_TOKEN"),
		WebAppURL:       getEnv("WEB_APP_URL", "https://formafitai.ru"),
		LLMProvider:     getEnv("LLM_PROVIDER", "openai"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		GeminiKey:       os.Getenv("GEMINI_API_KEY"),
		S3Bucket:        os.Getenv("S3_BUCKET"),
		S3Region:        getEnv("S3_REGION", os.Getenv("AWS_REGION")),
		CloudFrontURL:   os.Getenv("CLOUDFRONT_URL"),
		DefaultTZOffset: getEnvInt("DEFAULT_TZ_OFFSET_MIN", -180), // Moscow, UTC+3
	}
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		Log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.NutritionLog{},
		&models.Workout{},
		&models.ExerciseLog{},
		&models.Exercise{},
		&models.ChatMessage{},
		&models.Notification{},
	)
	if err != nil {
		Log.Fatalf("AutoMigrate failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
