package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The Mini App reads lowercase keys (`workout.id`, `ex.id`, `n.id`) off
// every row, so no model may leak gorm.Model's exported field names.
func TestModelsMarshalLowercaseKeys(t *testing.T) {
	rows := map[string]any{
		"user":         User{},
		"nutritionLog": NutritionLog{},
		"workout":      Workout{},
		"exerciseLog":  ExerciseLog{},
		"exercise":     Exercise{},
		"notification": Notification{},
	}

	for name, row := range rows {
		b, err := json.Marshal(row)
		require.NoError(t, err, name)

		var keys map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(b, &keys), name)

		assert.Contains(t, keys, "id", name)
		assert.Contains(t, keys, "createdAt", name)
		assert.NotContains(t, keys, "ID", name)
		assert.NotContains(t, keys, "CreatedAt", name)
		assert.NotContains(t, keys, "UpdatedAt", name)
		assert.NotContains(t, keys, "DeletedAt", name)
	}
}

func TestWorkoutMarshalsID(t *testing.T) {
	w := Workout{Name: "День груди", Date: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
	w.ID = 7

	b, err := json.Marshal(w)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"id":7`)
}
