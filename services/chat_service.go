package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ser6eevich/formafit/config"
	"github.com/ser6eevich/formafit/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatService struct {
	llm LLMClient
}

func NewChatService(llm LLMClient) *ChatService {
	return &ChatService{llm: llm}
}

const chatGreeting = "Привет, бро! Готов порвать зал? Чем могу помочь!"

// Send answers one chat message: latest workout and recent history are
// fetched concurrently, both sides of the exchange are persisted.
func (s *ChatService) Send(ctx context.Context, user *models.User, message, imageBase64 string) (string, error) {
	if message == "" && imageBase64 == "" {
		return "", fmt.Errorf("empty message")
	}

	var (
		wg         sync.WaitGroup
		lastWork   models.Workout
		hasWorkout bool
		recent     []models.ChatMessage
		recentErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		err := config.DB.
			Preload("Exercises").
			Where("user_id = ?", user.ID).
			Order("date DESC").
			First(&lastWork).Error
		hasWorkout = err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			config.Log.Warnf("chat: failed to load latest workout: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		recentErr = config.DB.
			Where("user_id = ?", user.ID).
			Order("created_at DESC").
			Limit(6).
			Find(&recent).Error
	}()
	wg.Wait()
	if recentErr != nil {
		return "", recentErr
	}

	userMsg := models.ChatMessage{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Role:     "user",
		Content:  message,
		ImageURL: imageBase64,
	}
	if err := config.DB.Create(&userMsg).Error; err != nil {
		return "", err
	}

	workoutContext := "Не в зале/Тренировка завершена."
	if hasWorkout && !lastWork.IsCompleted {
		workoutContext = fmt.Sprintf("В зале сейчас. План: %s. Запланировано упражнений: %d",
			lastWork.Name, len(lastWork.Exercises))
	}
	system := buildChatSystemPrompt(user, workoutContext)

	// history goes to the model oldest first
	history := make([]ChatTurn, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		history = append(history, ChatTurn{Role: recent[i].Role, Content: recent[i].Content})
	}

	reply, err := s.llm.Reply(ctx, system, history, message, imageBase64)
	if err != nil {
		return "", err
	}

	aiMsg := models.ChatMessage{
		ID:      uuid.NewString(),
		UserID:  user.ID,
		Role:    "assistant",
		Content: reply,
	}
	if err := config.DB.Create(&aiMsg).Error; err != nil {
		return "", err
	}
	return reply, nil
}

func buildChatSystemPrompt(user *models.User, workoutContext string) string {
	weight := "Не указан"
	if user.Weight > 0 {
		weight = fmt.Sprintf("%g кг", user.Weight)
	}
	height := "Не указан"
	if user.Height > 0 {
		height = fmt.Sprintf("%g см", user.Height)
	}

	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		loc = time.UTC
	}

	return fmt.Sprintf(`Ты - "Карманный бро", персональный фитнес-тренер для пользователя.
Отвечай коротко, без занудства, для экрана мобильного. Тебе можно доверять.
Контекст:
- Имя: %s
- Пол: %s
- Дата рождения: %s
- Вес: %s
- Рост: %s
- Травмы/Ограничения: %s
- Цель: %s
- Статус: %s
- Текущая дата и время: %s (используй это для расчета возраста и контекста)
`,
		orDefault(user.FirstName, "Не указано"),
		orDefault(user.Gender, "Не указан"),
		orDefault(user.BirthDate, "Не указана"),
		weight, height,
		orDefault(user.Injuries, "Нет"),
		orDefault(user.Goal, "Не указана"),
		workoutContext,
		time.Now().In(loc).Format("02.01.2006 15:04"),
	)
}

// Messages returns the full conversation oldest first, with a canned
// greeting when the user has no history yet.
func (s *ChatService) Messages(userID uint) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		msgs = append(msgs, models.ChatMessage{ID: "1", Role: "assistant", Content: chatGreeting})
	}
	return msgs, nil
}

func (s *ChatService) Clear(userID uint) error {
	return config.DB.Where("user_id = ?", userID).Delete(&models.ChatMessage{}).Error
}
