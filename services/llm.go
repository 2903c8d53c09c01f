package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/ser6eevich/formafit/models"
)

// MealEstimate is the model's judgement of one meal. Numbers come back from
// the model as floats and are rounded when persisted.
type MealEstimate struct {
	FoodName string  `json:"foodName"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

type PlannedExercise struct {
	Name string               `json:"name"`
	Sets []models.ExerciseSet `json:"sets"`
}

type WorkoutPlan struct {
	WorkoutName string            `json:"workoutName"`
	Exercises   []PlannedExercise `json:"exercises"`
}

type ChatTurn struct {
	Role    string // "user"|"assistant"
	Content string
}

// LLMClient is the one opaque function surface the rest of the backend sees.
type LLMClient interface {
	// EstimateMeal judges a meal from free text and/or a base64 JPEG.
	EstimateMeal(ctx context.Context, text, imageBase64 string) (*MealEstimate, error)
	// GenerateWorkout turns a fully assembled prompt into a structured plan.
	GenerateWorkout(ctx context.Context, prompt string) (*WorkoutPlan, error)
	// Reply answers a coach-chat message given system context and history.
	Reply(ctx context.Context, system string, history []ChatTurn, message, imageBase64 string) (string, error)
}

const mealEstimatePrompt = `Ты профессиональный нутрициолог. Оцени еду на фото или по описанию.
Верни СТРОГО JSON:
{
  "foodName": "Название блюда",
  "calories": 400,
  "protein": 30,
  "carbs": 40,
  "fats": 15
}`

// extractJSON strips markdown code fences some models wrap around JSON
// answers even in JSON mode.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}

func parseMealEstimate(raw string) (*MealEstimate, error) {
	var est MealEstimate
	if err := json.Unmarshal([]byte(extractJSON(raw)), &est); err != nil {
		return nil, fmt.Errorf("bad meal estimate from model: %w", err)
	}
	if est.FoodName == "" {
		est.FoodName = "Неизвестное блюдо"
	}
	est.Calories = clampMacro(est.Calories)
	est.Protein = clampMacro(est.Protein)
	est.Carbs = clampMacro(est.Carbs)
	est.Fats = clampMacro(est.Fats)
	return &est, nil
}

func clampMacro(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

func parseWorkoutPlan(raw string) (*WorkoutPlan, error) {
	var plan WorkoutPlan
	if err := json.Unmarshal([]byte(extractJSON(raw)), &plan); err != nil {
		return nil, fmt.Errorf("bad workout plan from model: %w", err)
	}
	if plan.WorkoutName == "" || len(plan.Exercises) == 0 {
		return nil, fmt.Errorf("workout plan is missing a name or exercises")
	}
	return &plan, nil
}
