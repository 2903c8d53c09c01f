package models

type User struct {
	Base
	TelegramID int64  `gorm:"uniqueIndex;not null" json:"telegramId"`
	Username   string `json:"username"`
	FirstName  string `json:"firstName"`
	PhotoURL   string `json:"photoUrl"`

	Gender     string  `json:"gender"`    // "Мужской"|"Женский"
	BirthDate  string  `json:"birthDate"` // YYYY-MM-DD as sent by the client
	Weight     float64 `json:"weight"`    // kg, 0 = unknown
	Height     float64 `json:"height"`    // cm, 0 = unknown
	Goal       string  `json:"goal"`      // "Похудение"|"Набор массы"|…
	Injuries   string  `json:"injuries"`
	Experience string  `json:"experience"`

	NotificationsEnabled bool `gorm:"default:true" json:"notificationsEnabled"`
	AlwaysAddPool        bool `gorm:"default:false" json:"alwaysAddPool"`
}
