package main

import (
	"encoding/json"
	"strconv"

	"github.com/ser6eevich/formafit/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const startMessage = "👋 Привет! Я — *Forma AI Fitness*.\n\n" +
	"Я твой умный персональный тренер. Я помогу тебе:\n" +
	"🏋️‍♂️ Составить идеальную программу тренировок\n" +
	"🥗 Проанализировать питание по фото\n" +
	"📊 Отслеживать прогресс.\n\n" +
	"Нажми кнопку ниже, чтобы начать!"

// The library predates Bot API 6.0, so web_app buttons are built by hand
// and sent through its generic JSON marshalling.
type webAppInfo struct {
	URL string `json:"url"`
}

type webAppButton struct {
	Text   string     `json:"text"`
	WebApp webAppInfo `json:"web_app"`
}

type webAppKeyboard struct {
	InlineKeyboard [][]webAppButton `json:"inline_keyboard"`
}

type menuButton struct {
	Type   string     `json:"type"`
	Text   string     `json:"text"`
	WebApp webAppInfo `json:"web_app"`
}

func setMenuButton(bot *tgbotapi.BotAPI, chatID int64, url string) error {
	button, err := json.Marshal(menuButton{Type: "web_app", Text: "✨ Forma", WebApp: webAppInfo{URL: url}})
	if err != nil {
		return err
	}
	params := tgbotapi.Params{
		"chat_id":     strconv.FormatInt(chatID, 10),
		"menu_button": string(button),
	}
	_, err = bot.MakeRequest("setChatMenuButton", params)
	return err
}

func handleStart(bot *tgbotapi.BotAPI, chatID int64) {
	if err := setMenuButton(bot, chatID, config.App.WebAppURL); err != nil {
		config.Log.Warnf("set menu button for chat %d: %v", chatID, err)
	}

	msg := tgbotapi.NewMessage(chatID, startMessage)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = webAppKeyboard{
		InlineKeyboard: [][]webAppButton{{
			{Text: "🚀 Открыть приложение Forma", WebApp: webAppInfo{URL: config.App.WebAppURL}},
		}},
	}

	if _, err := bot.Send(msg); err != nil {
		config.Log.Errorf("reply to /start in chat %d: %v", chatID, err)
	}
}

func main() {
	config.InitLogger()
	config.Load()

	if config.App.BotToken == "" {
		config.Log.Fatalf("TELEGRAM_BOT_TOKEN is not set")
	}

	bot, err := tgbotapi.NewBotAPI(config.App.BotToken)
	if err != nil {
		config.Log.Fatalf("Failed to init bot: %v", err)
	}

	config.Log.Infof("Bot started as @%s, web app at %s", bot.Self.UserName, config.App.WebAppURL)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	for update := range bot.GetUpdatesChan(u) {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}
		if update.Message.Command() == "start" {
			handleStart(bot, update.Message.Chat.ID)
		}
	}
}
