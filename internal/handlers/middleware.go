package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware logs every incoming message with its origin.
func LoggingMiddleware(update tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	fields := logrus.Fields{
		"chat_id": update.Message.Chat.ID,
	}
	if update.Message.From != nil {
		fields["user_id"] = update.Message.From.ID
		fields["username"] = update.Message.From.UserName
	}

	logrus.WithFields(fields).Infof("Message received: %s", update.Message.Text)
}
