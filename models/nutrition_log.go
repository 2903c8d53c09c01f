package models

// One recorded meal. CreatedAt doubles as the entry timestamp (UTC, server
// clock); rows are never updated after creation, only read and aggregated.
type NutritionLog struct {
	Base
	UserID   uint   `gorm:"index;not null" json:"userId"`
	MealType string `json:"mealType"` // "Завтрак"|"Обед"|"Ужин"|"Перекус"
	FoodName string `json:"foodName"`

	Calories int `gorm:"default:0" json:"calories"` // kcal
	Protein  int `gorm:"default:0" json:"protein"`  // g
	Carbs    int `gorm:"default:0" json:"carbs"`    // g
	Fats     int `gorm:"default:0" json:"fats"`     // g

	PhotoURL string `json:"photoUrl,omitempty"`
}
