package bot

import (
	"fmt"

	"github.com/Ozziff/pivnoi-vopros-bot/internal/config"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Service is the part of the Telegram transport the handlers depend on.
// Kept narrow so tests can swap in a mock.
type Service interface {
	SendMessage(chatID int64, text string, keyboard any)
	EditMessageText(chatID int64, messageID int, text string) error
	SendPhotoFile(chatID int64, path string) error
	AnswerCallbackQuery(cfg tgbotapi.CallbackConfig)
}

type Bot struct {
	Api *tgbotapi.BotAPI
}

func InitBot(cfg *config.Config) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logrus.WithError(err).Error("Error creating bot")
		return nil, fmt.Errorf("error creating bot: %w", err)
	}
	logrus.Infof("Authorized on account %s", api.Self.UserName)
	return &Bot{Api: api}, nil
}

func (b *Bot) SendMessage(chatID int64, text string, keyboard any) {
	msg := tgbotapi.NewMessage(chatID, text)
	if keyboard != nil {
		msg.ReplyMarkup = keyboard
	}
	if smsg, err := b.Api.Send(msg); err != nil {
		logrus.WithError(err).Errorf("Message (%s) not sent", smsg.Text)
	}
}

func (b *Bot) EditMessageText(chatID int64, messageID int, text string) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	if _, err := b.Api.Send(edit); err != nil {
		logrus.WithError(err).Error("Failed to edit message")
		return err
	}
	return nil
}

func (b *Bot) SendPhotoFile(chatID int64, path string) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(path))
	if _, err := b.Api.Send(photo); err != nil {
		logrus.WithError(err).Errorf("Photo (%s) not sent", path)
		return err
	}
	return nil
}

func (b *Bot) AnswerCallbackQuery(cfg tgbotapi.CallbackConfig) {
	if _, err := b.Api.Request(cfg); err != nil {
		logrus.WithError(err).Warn("Failed to answer callback query")
	}
}

// DropPendingUpdates discards the backlog accumulated while the bot was down
// and returns the offset polling should start from. A restart must not
// replay day-old /start presses.
func (b *Bot) DropPendingUpdates() int {
	updates, err := b.Api.GetUpdates(tgbotapi.UpdateConfig{Offset: -1})
	if err != nil {
		logrus.WithError(err).Warn("Failed to drop pending updates")
		return 0
	}
	offset := NextOffset(updates)
	if offset > 0 {
		logrus.Infof("Dropped pending updates, polling from offset %d", offset)
	}
	return offset
}

// NextOffset returns the offset just past the last update of a batch, or 0
// for an empty batch.
func NextOffset(updates []tgbotapi.Update) int {
	if len(updates) == 0 {
		return 0
	}
	return updates[len(updates)-1].UpdateID + 1
}
