package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	cases := map[string]string{
		`{"a":1}`:                         `{"a":1}`,
		"```json\n{\"a\":1}\n```":         `{"a":1}`,
		"```\n{\"a\":1}\n```":             `{"a":1}`,
		"  \n{\"a\":1}\n  ":               `{"a":1}`,
		"```json\n{\"a\":\"b```c\"}\n```": "{\"a\":\"b```c\"}",
	}
	for in, want := range cases {
		assert.Equal(t, want, extractJSON(in), "input %q", in)
	}
}

func TestParseMealEstimate(t *testing.T) {
	est, err := parseMealEstimate(`{"foodName":"Борщ","calories":350,"protein":12,"carbs":30,"fats":18}`)
	require.NoError(t, err)
	assert.Equal(t, "Борщ", est.FoodName)
	assert.Equal(t, 350.0, est.Calories)
	assert.Equal(t, 18.0, est.Fats)
}

func TestParseMealEstimateFenced(t *testing.T) {
	est, err := parseMealEstimate("```json\n{\"foodName\":\"Салат\",\"calories\":120}\n```")
	require.NoError(t, err)
	assert.Equal(t, "Салат", est.FoodName)
	assert.Equal(t, 120.0, est.Calories)
}

func TestParseMealEstimateDefaultsName(t *testing.T) {
	est, err := parseMealEstimate(`{"calories":200}`)
	require.NoError(t, err)
	assert.Equal(t, "Неизвестное блюдо", est.FoodName)
}

func TestParseMealEstimateClampsNegatives(t *testing.T) {
	est, err := parseMealEstimate(`{"foodName":"x","calories":-50,"protein":-1}`)
	require.NoError(t, err)
	assert.Zero(t, est.Calories)
	assert.Zero(t, est.Protein)
}

func TestParseMealEstimateBadJSON(t *testing.T) {
	_, err := parseMealEstimate("я не знаю, что это за блюдо")
	assert.Error(t, err)
}

func TestParseWorkoutPlan(t *testing.T) {
	raw := `{
		"workoutName": "День груди",
		"exercises": [
			{"name": "Жим лёжа", "sets": [{"reps": 10, "weight": 60}, {"reps": 8, "weight": 70}]}
		]
	}`
	plan, err := parseWorkoutPlan(raw)
	require.NoError(t, err)
	assert.Equal(t, "День груди", plan.WorkoutName)
	require.Len(t, plan.Exercises, 1)
	require.Len(t, plan.Exercises[0].Sets, 2)
	assert.Equal(t, 70.0, plan.Exercises[0].Sets[1].Weight)
}

func TestParseWorkoutPlanRejectsEmpty(t *testing.T) {
	_, err := parseWorkoutPlan(`{"workoutName":"","exercises":[]}`)
	assert.Error(t, err)

	_, err = parseWorkoutPlan(`{"workoutName":"План","exercises":[]}`)
	assert.Error(t, err)
}
