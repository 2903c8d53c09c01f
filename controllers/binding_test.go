package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSONContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("POST", "/api/chat", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, rec
}

// The Mini App sends workoutName/selectedExercises when saving a manual
// workout.
func TestManualInputBindsClientPayload(t *testing.T) {
	payload := `{
		"workoutName": "Моя тренировка",
		"selectedExercises": [
			{"name": "Жим штанги лежа", "sets": 3, "reps": 10, "weight": 40},
			{"name": "Беговая дорожка", "isCardio": true, "duration": 10}
		]
	}`

	var body manualInput
	require.NoError(t, json.Unmarshal([]byte(payload), &body))
	assert.Equal(t, "Моя тренировка", body.Name)
	require.Len(t, body.Exercises, 2)
	assert.Equal(t, "Жим штанги лежа", body.Exercises[0].Name)
	assert.True(t, body.Exercises[1].IsCardio)
}

// Finishing early sends isEarlyFinish, which decides the blank-RPE default.
func TestCompleteInputBindsClientPayload(t *testing.T) {
	payload := `{
		"workoutId": 7,
		"exercises": [{"id": 12, "name": "Жим штанги лежа", "rpe": "8"}],
		"isEarlyFinish": true
	}`

	var body completeInput
	require.NoError(t, json.Unmarshal([]byte(payload), &body))
	assert.Equal(t, uint(7), body.WorkoutID)
	assert.True(t, body.EarlyFinish)
	require.Len(t, body.Exercises, 1)
	assert.Equal(t, "8", body.Exercises[0].RPE)
}

func TestMarkReadInputBindsClientPayload(t *testing.T) {
	var body markReadInput
	require.NoError(t, json.Unmarshal([]byte(`{"notificationId": 42}`), &body))
	assert.Equal(t, uint(42), body.NotificationID)
}

func TestChatSendRejectsEmptyMessage(t *testing.T) {
	h := NewChatController(nil)

	c, rec := postJSONContext(`{}`)
	h.Send(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// A photo without text is a valid chat message: the request must get past
// input validation (it fails later only because no user is attached here).
func TestChatSendAcceptsImageOnly(t *testing.T) {
	h := NewChatController(nil)

	c, rec := postJSONContext(`{"imageBase64": "/9j/4AAQSkZJRg=="}`)
	h.Send(c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
