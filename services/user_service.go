package services

import (
	"errors"

	"github.com/ser6eevich/formafit/config"
	"github.com/ser6eevich/formafit/models"

	"gorm.io/gorm"
)

// ProfileInput uses pointers so an absent field leaves the stored value
// untouched while an explicit zero still applies.
type ProfileInput struct {
	Username             *string  `json:"username"`
	FirstName            *string  `json:"firstName"`
	PhotoURL             *string  `json:"photoUrl"`
	Gender               *string  `json:"gender"`
	BirthDate            *string  `json:"birthDate"`
	Weight               *float64 `json:"weight"`
	Height               *float64 `json:"height"`
	Goal                 *string  `json:"goal"`
	Injuries             *string  `json:"injuries"`
	Experience           *string  `json:"experience"`
	NotificationsEnabled *bool    `json:"notificationsEnabled"`
	AlwaysAddPool        *bool    `json:"alwaysAddPool"`
}

func FindUserByTelegramID(telegramID int64) (*models.User, error) {
	var user models.User
	err := config.DB.Where("telegram_id = ?", telegramID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertUser creates the user row on first contact and applies the provided
// profile fields on every call.
func UpsertUser(telegramID int64, in ProfileInput) (*models.User, error) {
	var user models.User
	err := config.DB.Where("telegram_id = ?", telegramID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{TelegramID: telegramID}
	} else if err != nil {
		return nil, err
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&user.Username, in.Username)
	applyString(&user.FirstName, in.FirstName)
	applyString(&user.PhotoURL, in.PhotoURL)
	applyString(&user.Gender, in.Gender)
	applyString(&user.BirthDate, in.BirthDate)
	applyString(&user.Goal, in.Goal)
	applyString(&user.Injuries, in.Injuries)
	applyString(&user.Experience, in.Experience)
	if in.Weight != nil {
		user.Weight = *in.Weight
	}
	if in.Height != nil {
		user.Height = *in.Height
	}
	if in.NotificationsEnabled != nil {
		user.NotificationsEnabled = *in.NotificationsEnabled
	}
	if in.AlwaysAddPool != nil {
		user.AlwaysAddPool = *in.AlwaysAddPool
	}

	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
