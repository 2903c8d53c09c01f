package models

// A catalog entry from the seeded exercise library.
type Exercise struct {
	Base
	Name        string `gorm:"not null" json:"name"`
	MuscleGroup string `gorm:"index" json:"muscleGroup"`
	Gender      string `gorm:"index" json:"gender"` // "male"|"female"|"unisex"
	Equipment   string `json:"equipment"`           // "barbell"|"dumbbell"|"machine"|"bodyweight"|"cardio"
	PhotoURL    string `json:"photoUrl"`

	DefaultSets   int     `gorm:"default:3" json:"defaultSets"`
	DefaultReps   int     `gorm:"default:10" json:"defaultReps"`
	DefaultWeight float64 `gorm:"default:0" json:"defaultWeight"`

	IsCardio        bool    `gorm:"default:false" json:"isCardio"`
	DefaultSpeed    float64 `json:"defaultSpeed"`
	DefaultIncline  float64 `json:"defaultIncline"`
	DefaultDuration int     `json:"defaultDuration"` // minutes

	OrderIndex int `gorm:"default:0" json:"orderIndex"`
}
