package handlers

import (
	"github.com/Ozziff/pivnoi-vopros-bot/internal/lang"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	TryLuckCallback = "try_luck"
	HistoryCallback = "history"
	TypesCallback   = "types"
	BrewingCallback = "brewing"
	CultureCallback = "culture"
)

func (h *Handler) StartHandler(message *tgbotapi.Message) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(lang.GetMessage(lang.TryLuckButtonMsgID), TryLuckCallback),
		),
	)
	h.bot.SendMessage(message.Chat.ID, lang.GetMessage(lang.StartGreetingMsgID), keyboard)
}

func (h *Handler) HelpHandler(message *tgbotapi.Message) {
	h.bot.SendMessage(message.Chat.ID, lang.GetMessage(lang.HelpMsgID), nil)
}

func (h *Handler) MenuHandler(message *tgbotapi.Message) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(lang.GetMessage(lang.HistoryButtonMsgID), HistoryCallback),
			tgbotapi.NewInlineKeyboardButtonData(lang.GetMessage(lang.TypesButtonMsgID), TypesCallback),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(lang.GetMessage(lang.BrewingButtonMsgID), BrewingCallback),
			tgbotapi.NewInlineKeyboardButtonData(lang.GetMessage(lang.CultureButtonMsgID), CultureCallback),
		),
	)
	h.bot.SendMessage(message.Chat.ID, lang.GetMessage(lang.MenuPromptMsgID), keyboard)
}
