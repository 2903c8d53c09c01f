package services

import (
	"time"

	"github.com/ser6eevich/formafit/config"
	"github.com/ser6eevich/formafit/models"

	"github.com/robfig/cron"
)

// StartReminders schedules the daily workout nudge. 17:00 server time is
// evening in the deployment's primary timezone.
func StartReminders(hub *RealtimeHub) *cron.Cron {
	c := cron.New()
	if err := c.AddFunc("0 0 17 * * *", func() { sendWorkoutReminders(hub) }); err != nil {
		config.Log.Errorf("failed to schedule workout reminders: %v", err)
		return c
	}
	c.Start()
	return c
}

func sendWorkoutReminders(hub *RealtimeHub) {
	var users []models.User
	if err := config.DB.Where("notifications_enabled = ?", true).Find(&users).Error; err != nil {
		config.Log.Errorf("reminders: failed to list users: %v", err)
		return
	}

	dayStart := DayStartUTC(time.Now(), config.App.DefaultTZOffset)
	sent := 0
	for _, u := range users {
		var count int64
		err := config.DB.Model(&models.Workout{}).
			Where("user_id = ? AND date >= ?", u.ID, dayStart).
			Count(&count).Error
		if err != nil || count > 0 {
			continue
		}
		NotifyUser(hub, u.ID, "workout.reminder", "Сегодня ещё не было тренировки. Зайди в приложение — я соберу план!")
		sent++
	}
	config.Log.Infof("workout reminders sent: %d", sent)
}
