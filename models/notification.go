package models

type Notification struct {
	Base
	UserID  uint   `gorm:"index;not null" json:"userId"`
	Type    string `json:"type"` // "meal.logged"|"workout.reminder"|…
	Message string `json:"message"`
	IsRead  bool   `gorm:"default:false" json:"isRead"`
}
