package services

import (
	"context"
	"fmt"
	"math"

	"github.com/ser6eevich/formafit/config"
	"github.com/ser6eevich/formafit/models"
	"github.com/ser6eevich/formafit/utils"
)

type MealService struct {
	llm LLMClient
	hub *RealtimeHub
}

func NewMealService(llm LLMClient, hub *RealtimeHub) *MealService {
	return &MealService{llm: llm, hub: hub}
}

// AnalyzeAndLog asks the model for a nutrition estimate and persists it
// verbatim as a new log entry. The entry is immutable from here on.
func (s *MealService) AnalyzeAndLog(
	ctx context.Context,
	user *models.User,
	text, imageBase64, mealType string,
) (*models.NutritionLog, error) {
	if text == "" && imageBase64 == "" {
		return nil, fmt.Errorf("either a description or a photo is required")
	}

	est, err := s.llm.EstimateMeal(ctx, text, imageBase64)
	if err != nil {
		return nil, err
	}

	if mealType == "" {
		mealType = "Перекус"
	}

	entry := &models.NutritionLog{
		UserID:   user.ID,
		MealType: mealType,
		FoodName: est.FoodName,
		Calories: int(math.Round(est.Calories)),
		Protein:  int(math.Round(est.Protein)),
		Carbs:    int(math.Round(est.Carbs)),
		Fats:     int(math.Round(est.Fats)),
	}

	// best effort: the log is valid without its photo
	if imageBase64 != "" && config.App.S3Bucket != "" {
		if url, err := utils.UploadBase64ImageToS3("data:image/jpeg;base64,"+imageBase64, "meals"); err == nil {
			entry.PhotoURL = url
		} else {
			config.Log.Warnf("meal photo upload failed: %v", err)
		}
	}

	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}

	NotifyUser(s.hub, user.ID, "meal.logged",
		fmt.Sprintf("%s — %d ккал", entry.FoodName, entry.Calories))

	return entry, nil
}
