package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type Workout struct {
	Base
	UserID        uint      `gorm:"index;not null" json:"userId"`
	Name          string    `json:"name"`
	Date          time.Time `gorm:"index" json:"date"`
	IsCompleted   bool      `gorm:"default:false" json:"isCompleted"`
	IsEarlyFinish bool      `gorm:"default:false" json:"isEarlyFinish"`

	Exercises []ExerciseLog `json:"exercises"`
}

// One set of one exercise. Cardio sets carry duration/speed/incline instead
// of a meaningful reps/weight pair.
type ExerciseSet struct {
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
	Duration string  `json:"duration,omitempty"` // e.g. "5 мин"
	Speed    float64 `json:"speed,omitempty"`
	Incline  float64 `json:"incline,omitempty"`
}

// ExerciseSets is stored as a single JSON column.
type ExerciseSets []ExerciseSet

func (s ExerciseSets) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *ExerciseSets) Scan(value interface{}) error {
	if value == nil {
		*s = ExerciseSets{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for ExerciseSets")
	}
}

type ExerciseLog struct {
	Base
	WorkoutID  uint         `gorm:"index;not null" json:"workoutId"`
	Name       string       `json:"name"`
	Sets       ExerciseSets `gorm:"type:jsonb" json:"sets"`
	RPE        string       `json:"rpe"` // "1".."10" | "done" | "none"
	PhotoURL   string       `json:"photoUrl"`
	OrderIndex int          `json:"orderIndex"`
}
