package controllers

import (
	"net/http"
	"strconv"

	"github.com/ser6eevich/formafit/config"
	"github.com/ser6eevich/formafit/services"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	Workouts *services.WorkoutService
}

func NewWorkoutController(workouts *services.WorkoutService) *WorkoutController {
	return &WorkoutController{Workouts: workouts}
}

type generateInput struct {
	TargetMuscles []string `json:"targetMuscles"`
	UserWishes    string   `json:"userWishes"`
}

// POST /api/workout/generate — build a workout plan from the profile and
// recent training history.
func (h *WorkoutController) Generate(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var body generateInput
	if err := c.ShouldBindJSON(&body); err != nil {
		body = generateInput{}
	}

	workout, err := h.Workouts.Generate(c.Request.Context(), user, body.TargetMuscles, body.UserWishes)
	if err != nil {
		config.Log.Errorf("workout generation for user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate workout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workout": workout})
}

type manualInput struct {
	Name      string                      `json:"workoutName"`
	Exercises []services.SelectedExercise `json:"selectedExercises"`
}

// POST /api/workout/manual — save a workout the user assembled themselves.
func (h *WorkoutController) CreateManual(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var body manualInput
	if err := c.ShouldBindJSON(&body); err != nil || len(body.Exercises) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing exercises"})
		return
	}

	workout, err := h.Workouts.CreateManual(user, body.Name, body.Exercises)
	if err != nil {
		config.Log.Errorf("manual workout for user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create workout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workout": workout})
}

type completeInput struct {
	WorkoutID   uint                         `json:"workoutId"`
	Exercises   []services.CompletedExercise `json:"exercises"`
	EarlyFinish bool                         `json:"isEarlyFinish"`
}

// POST /api/workout/complete — record set results and close the workout.
func (h *WorkoutController) Complete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var body completeInput
	if err := c.ShouldBindJSON(&body); err != nil || body.WorkoutID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing workoutId"})
		return
	}

	workout, err := h.Workouts.Complete(user, body.WorkoutID, body.Exercises, body.EarlyFinish)
	if err != nil {
		config.Log.Errorf("complete workout %d for user %d: %v", body.WorkoutID, user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete workout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workout": workout})
}

// GET /api/workout/history — completed workouts, newest first.
func (h *WorkoutController) History(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	limit := 30
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	workouts, err := h.Workouts.History(user.ID, limit)
	if err != nil {
		config.Log.Errorf("workout history for user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workouts": workouts})
}
