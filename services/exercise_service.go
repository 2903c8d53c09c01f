package services

import (
	"strings"

	"github.com/ser6eevich/formafit/config"
	"github.com/ser6eevich/formafit/models"

	"gorm.io/gorm"
)

// ListExercises returns warmup (unisex) rows plus the rows for the requested
// gender, catalog-ordered, together with a muscle-group index for the UI.
func ListExercises(gender string) ([]models.Exercise, map[string][]models.Exercise, error) {
	g := "male"
	if gender == "Женский" || gender == "female" {
		g = "female"
	}

	var exercises []models.Exercise
	err := config.DB.
		Where("gender = ? OR gender = ?", "unisex", g).
		Order("muscle_group ASC").
		Order("order_index ASC").
		Find(&exercises).Error
	if err != nil {
		return nil, nil, err
	}

	grouped := make(map[string][]models.Exercise)
	for _, ex := range exercises {
		grouped[ex.MuscleGroup] = append(grouped[ex.MuscleGroup], ex)
	}
	return exercises, grouped, nil
}

// FindExercisePhoto resolves a catalog photo for a generated exercise name.
// Generated names may carry a warmup prefix and rarely match the catalog
// exactly, so the lookup is a substring match on the cleaned name.
func FindExercisePhoto(tx *gorm.DB, name string) string {
	cleaned := strings.TrimSpace(strings.TrimPrefix(name, "Разминка: "))
	if cleaned == "" {
		return ""
	}
	var ex models.Exercise
	err := tx.Where("name LIKE ?", "%"+cleaned+"%").First(&ex).Error
	if err != nil {
		return ""
	}
	return ex.PhotoURL
}

// CleanExerciseName is the matching key used by FindExercisePhoto, exposed
// for tests and for the manual-workout path.
func CleanExerciseName(name string) string {
	return strings.TrimSpace(strings.TrimPrefix(name, "Разминка: "))
}

// SeedExercises loads the static catalog on first start.
func SeedExercises() error {
	var count int64
	if err := config.DB.Model(&models.Exercise{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	config.Log.Infof("seeding exercise catalog: %d entries", len(exerciseCatalog))
	return config.DB.Create(&exerciseCatalog).Error
}
