package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanExerciseName(t *testing.T) {
	assert.Equal(t, "беговая дорожка", CleanExerciseName("Разминка: беговая дорожка"))
	assert.Equal(t, "Жим штанги лежа", CleanExerciseName("Жим штанги лежа"))
	assert.Equal(t, "Бассейн", CleanExerciseName("  Бассейн "))
	assert.Equal(t, "", CleanExerciseName("Разминка: "))
}

func TestExerciseCatalogShape(t *testing.T) {
	assert.NotEmpty(t, exerciseCatalog)

	var hasPool bool
	for _, ex := range exerciseCatalog {
		assert.NotEmpty(t, ex.Name)
		assert.NotEmpty(t, ex.MuscleGroup)
		assert.Contains(t, []string{"male", "female", "unisex"}, ex.Gender)
		if ex.IsCardio {
			assert.NotZero(t, ex.DefaultDuration, "cardio %q needs a duration", ex.Name)
		} else {
			assert.NotZero(t, ex.DefaultSets, "strength %q needs sets", ex.Name)
			assert.NotZero(t, ex.DefaultReps, "strength %q needs reps", ex.Name)
		}
		if ex.Name == "Бассейн" {
			hasPool = true
		}
	}
	assert.True(t, hasPool, "catalog must contain the pool entry")
}
