package controllers

import (
	"net/http"
	"time"

	"github.com/ser6eevich/formafit/config"
	"github.com/ser6eevich/formafit/middlewares"
	"github.com/ser6eevich/formafit/services"

	"github.com/gin-gonic/gin"
)

type NutritionController struct {
	Meals *services.MealService
}

func NewNutritionController(meals *services.MealService) *NutritionController {
	return &NutritionController{Meals: meals}
}

// GET /api/nutrition — today's totals against goals plus the day's items.
func (h *NutritionController) GetToday(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	tzOffset := middlewares.ParseTimezoneOffset(c, config.App.DefaultTZOffset)
	dayStart := services.DayStartUTC(time.Now(), tzOffset)

	logs, err := services.ListLogsSince(user.ID, dayStart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Error"})
		return
	}

	totals, items := services.TodayTotals(logs)
	goals := services.CalculateGoals(user.Weight, user.Goal)

	c.JSON(http.StatusOK, gin.H{
		"totals": totals,
		"goals":  goals,
		"items":  items,
	})
}

// GET /api/nutrition/history — per-day aggregates, newest day first.
func (h *NutritionController) GetHistory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	logs, err := services.ListRecentLogs(user.ID, 100)
	if err != nil {
		config.Log.Errorf("nutrition history for user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": services.GroupByDay(logs)})
}

type analyzeInput struct {
	Text        string `json:"text"`
	ImageBase64 string `json:"imageBase64"`
	MealType    string `json:"mealType"`
}

// POST /api/nutrition/analyze — estimate a meal from text and/or a photo
// and persist the result as a log entry.
func (h *NutritionController) Analyze(c *gin.Context) {
	var body analyzeInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data"})
		return
	}
	if body.Text == "" && body.ImageBase64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data"})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	entry, err := h.Meals.AnalyzeAndLog(c.Request.Context(), user, body.Text, body.ImageBase64, body.MealType)
	if err != nil {
		config.Log.Errorf("meal analysis for user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze nutrition"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "log": entry})
}

// POST /api/nutrition/vision — photo-only variant of Analyze.
func (h *NutritionController) Vision(c *gin.Context) {
	var body struct {
		ImageBase64 string `json:"imageBase64"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.ImageBase64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data"})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	entry, err := h.Meals.AnalyzeAndLog(c.Request.Context(), user, "", body.ImageBase64, "")
	if err != nil {
		config.Log.Errorf("meal vision for user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "log": entry})
}
