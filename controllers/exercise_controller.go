package controllers

import (
	"net/http"

	"github.com/ser6eevich/formafit/config"
	"github.com/ser6eevich/formafit/services"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct{}

func NewExerciseController() *ExerciseController {
	return &ExerciseController{}
}

// GET /api/exercises — the catalog for the caller's gender, grouped by
// muscle group.
func (h *ExerciseController) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	gender := c.Query("gender")
	if gender == "" {
		gender = user.Gender
	}

	exercises, grouped, err := services.ListExercises(gender)
	if err != nil {
		config.Log.Errorf("list exercises: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exercises"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exercises": exercises, "grouped": grouped})
}
