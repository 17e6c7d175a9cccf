package testutils

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// MockMessage captures a single message sent by MockBot.
type MockMessage struct {
	ChatID   int64
	Text     string
	Keyboard any
}

// MockEdit captures a single message edit performed by MockBot.
type MockEdit struct {
	ChatID    int64
	MessageID int
	Text      string
}

// MockBot implements bot.Service for testing.
// Every send/edit/photo call is recorded in order.
type MockBot struct {
	SentMessages      []MockMessage
	EditedMessages    []MockEdit
	SentPhotos        []string
	AnsweredCallbacks []string

	// SendPhotoError, if set, is returned by SendPhotoFile.
	SendPhotoError error
}

func (m *MockBot) SendMessage(chatID int64, text string, keyboard any) {
	m.SentMessages = append(m.SentMessages, MockMessage{
		ChatID:   chatID,
		Text:     text,
		Keyboard: keyboard,
	})
}

func (m *MockBot) EditMessageText(chatID int64, messageID int, text string) error {
	m.EditedMessages = append(m.EditedMessages, MockEdit{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
	})
	return nil
}

func (m *MockBot) SendPhotoFile(_ int64, path string) error {
	if m.SendPhotoError != nil {
		return m.SendPhotoError
	}
	m.SentPhotos = append(m.SentPhotos, path)
	return nil
}

func (m *MockBot) AnswerCallbackQuery(cfg tgbotapi.CallbackConfig) {
	m.AnsweredCallbacks = append(m.AnsweredCallbacks, cfg.CallbackQueryID)
}

// GetLastMessage returns the most recently sent message, or nil if none.
func (m *MockBot) GetLastMessage() *MockMessage {
	if len(m.SentMessages) == 0 {
		return nil
	}
	return &m.SentMessages[len(m.SentMessages)-1]
}

// GetLastEdit returns the most recent message edit, or nil if none.
func (m *MockBot) GetLastEdit() *MockEdit {
	if len(m.EditedMessages) == 0 {
		return nil
	}
	return &m.EditedMessages[len(m.EditedMessages)-1]
}

// ClearMessages resets everything captured so far.
func (m *MockBot) ClearMessages() {
	m.SentMessages = nil
	m.EditedMessages = nil
	m.SentPhotos = nil
	m.AnsweredCallbacks = nil
}
