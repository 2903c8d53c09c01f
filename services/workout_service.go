package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ser6eevich/formafit/config"
	"github.com/ser6eevich/formafit/models"

	"gorm.io/gorm"
)

type WorkoutService struct {
	llm LLMClient
	hub *RealtimeHub
}

func NewWorkoutService(llm LLMClient, hub *RealtimeHub) *WorkoutService {
	return &WorkoutService{llm: llm, hub: hub}
}

const poolExerciseName = "Бассейн"

// Generate builds a one-day plan from the profile, recent exercise history
// and free-form wishes, then persists it atomically.
func (s *WorkoutService) Generate(
	ctx context.Context,
	user *models.User,
	targetMuscles []string,
	userWishes string,
) (*models.Workout, error) {
	// last 5 exercise logs across all workouts, for weight progression
	var pastLogs []models.ExerciseLog
	err := config.DB.
		Joins("JOIN workouts ON workouts.id = exercise_logs.workout_id").
		Where("workouts.user_id = ?", user.ID).
		Order("exercise_logs.id DESC").
		Limit(5).
		Find(&pastLogs).Error
	if err != nil {
		return nil, err
	}

	var pastLines []string
	for _, l := range pastLogs {
		rpe := l.RPE
		if rpe == "" {
			rpe = "N/A"
		}
		pastLines = append(pastLines, fmt.Sprintf("%s - RPE: %s", l.Name, rpe))
	}

	prompt := buildWorkoutPrompt(user, targetMuscles, userWishes, strings.Join(pastLines, "\n"))

	plan, err := s.llm.GenerateWorkout(ctx, prompt)
	if err != nil {
		return nil, err
	}

	exercises := plan.Exercises
	if user.AlwaysAddPool && !containsExercise(exercises, poolExerciseName) {
		exercises = append(exercises, PlannedExercise{
			Name: poolExerciseName,
			Sets: []models.ExerciseSet{{Reps: 1, Weight: 0, Duration: "30 мин"}},
		})
	}

	var workout models.Workout
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		workout = models.Workout{UserID: user.ID, Name: plan.WorkoutName, Date: time.Now().UTC()}
		if err := tx.Create(&workout).Error; err != nil {
			return err
		}
		for i, ex := range exercises {
			log := models.ExerciseLog{
				WorkoutID:  workout.ID,
				Name:       ex.Name,
				Sets:       ex.Sets,
				PhotoURL:   FindExercisePhoto(tx, ex.Name),
				OrderIndex: i,
			}
			if err := tx.Create(&log).Error; err != nil {
				return err
			}
		}
		return tx.Preload("Exercises", orderByIndex).First(&workout, workout.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func containsExercise(list []PlannedExercise, name string) bool {
	for _, ex := range list {
		if strings.Contains(ex.Name, name) {
			return true
		}
	}
	return false
}

func orderByIndex(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC")
}

// SelectedExercise is one catalog row as the client sends it back for a
// manual workout, with optional per-workout overrides over the defaults.
type SelectedExercise struct {
	Name     string  `json:"name"`
	IsCardio bool    `json:"isCardio"`
	PhotoURL string  `json:"photoUrl"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
	Duration int     `json:"duration"`
	Speed    float64 `json:"speed"`
	Incline  float64 `json:"incline"`

	DefaultSets     int     `json:"defaultSets"`
	DefaultReps     int     `json:"defaultReps"`
	DefaultWeight   float64 `json:"defaultWeight"`
	DefaultDuration int     `json:"defaultDuration"`
	DefaultSpeed    float64 `json:"defaultSpeed"`
	DefaultIncline  float64 `json:"defaultIncline"`
}

// BuildSets materializes the set list for one selected exercise: cardio gets
// a single timed set, strength gets N sets of reps×weight, overrides win
// over catalog defaults.
func BuildSets(ex SelectedExercise) models.ExerciseSets {
	if ex.IsCardio {
		return models.ExerciseSets{{
			Reps:     1,
			Weight:   0,
			Duration: fmt.Sprintf("%d мин", pickInt(ex.Duration, ex.DefaultDuration, 5)),
			Speed:    pickFloat(ex.Speed, ex.DefaultSpeed, 6),
			Incline:  pickFloat(ex.Incline, ex.DefaultIncline, 1),
		}}
	}
	n := pickInt(ex.Sets, ex.DefaultSets, 3)
	reps := pickInt(ex.Reps, ex.DefaultReps, 10)
	weight := ex.Weight
	if weight == 0 {
		weight = ex.DefaultWeight
	}
	sets := make(models.ExerciseSets, 0, n)
	for i := 0; i < n; i++ {
		sets = append(sets, models.ExerciseSet{Reps: reps, Weight: weight})
	}
	return sets
}

func pickInt(vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}

func pickFloat(vals ...float64) float64 {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}

// CreateManual builds a workout from exercises the user picked by hand.
func (s *WorkoutService) CreateManual(
	user *models.User,
	workoutName string,
	selected []SelectedExercise,
) (*models.Workout, error) {
	if len(selected) == 0 {
		return nil, fmt.Errorf("no exercises selected")
	}
	if workoutName == "" {
		workoutName = "Моя тренировка"
	}

	var workout models.Workout
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		workout = models.Workout{UserID: user.ID, Name: workoutName, Date: time.Now().UTC()}
		if err := tx.Create(&workout).Error; err != nil {
			return err
		}

		final := selected
		if user.AlwaysAddPool && !containsSelected(final, poolExerciseName) {
			final = append(final, SelectedExercise{
				Name:     poolExerciseName,
				IsCardio: true,
				Duration: 30,
				PhotoURL: FindExercisePhoto(tx, poolExerciseName),
			})
		}

		for i, ex := range final {
			log := models.ExerciseLog{
				WorkoutID:  workout.ID,
				Name:       ex.Name,
				Sets:       BuildSets(ex),
				PhotoURL:   ex.PhotoURL,
				OrderIndex: i,
			}
			if log.PhotoURL == "" {
				log.PhotoURL = FindExercisePhoto(tx, ex.Name)
			}
			if err := tx.Create(&log).Error; err != nil {
				return err
			}
		}
		return tx.Preload("Exercises", orderByIndex).First(&workout, workout.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func containsSelected(list []SelectedExercise, name string) bool {
	for _, ex := range list {
		if ex.Name == name {
			return true
		}
	}
	return false
}

// CompletedExercise carries the final state of one exercise at finish time.
// ID 0 marks an exercise the client added during the session.
type CompletedExercise struct {
	ID   uint                `json:"id"`
	Name string              `json:"name"`
	Sets models.ExerciseSets `json:"sets"`
	RPE  string              `json:"rpe"`
}

// Complete stores per-exercise RPE and closes the workout.
func (s *WorkoutService) Complete(
	user *models.User,
	workoutID uint,
	exercises []CompletedExercise,
	isEarlyFinish bool,
) (*models.Workout, error) {
	var workout models.Workout
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", workoutID, user.ID).First(&workout).Error; err != nil {
			return err
		}

		for _, ex := range exercises {
			rpe := ex.RPE
			if rpe == "" {
				if isEarlyFinish {
					rpe = "none"
				} else {
					rpe = "done"
				}
			}
			if ex.ID != 0 {
				if err := tx.Model(&models.ExerciseLog{}).
					Where("id = ? AND workout_id = ?", ex.ID, workoutID).
					Update("rpe", rpe).Error; err != nil {
					return err
				}
			} else {
				log := models.ExerciseLog{
					WorkoutID:  workoutID,
					Name:       ex.Name,
					Sets:       ex.Sets,
					RPE:        rpe,
					OrderIndex: 999,
				}
				if err := tx.Create(&log).Error; err != nil {
					return err
				}
			}
		}

		workout.IsCompleted = true
		workout.IsEarlyFinish = isEarlyFinish
		if err := tx.Save(&workout).Error; err != nil {
			return err
		}
		return tx.Preload("Exercises", orderByIndex).First(&workout, workoutID).Error
	})
	if err != nil {
		return nil, err
	}

	NotifyUser(s.hub, user.ID, "workout.completed", fmt.Sprintf("Тренировка «%s» завершена", workout.Name))
	return &workout, nil
}

// History lists the newest completed workouts with their ordered exercises.
func (s *WorkoutService) History(userID uint, limit int) ([]models.Workout, error) {
	if limit <= 0 {
		limit = 30
	}
	var workouts []models.Workout
	err := config.DB.
		Preload("Exercises", orderByIndex).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Order("date DESC").
		Limit(limit).
		Find(&workouts).Error
	return workouts, err
}
