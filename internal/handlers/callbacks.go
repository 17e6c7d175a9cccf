package handlers

import (
	"fmt"
	"strings"

	"github.com/Ozziff/pivnoi-vopros-bot/internal/beer"
	"github.com/Ozziff/pivnoi-vopros-bot/internal/lang"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

var topicMessages = map[string]lang.MessageID{
	HistoryCallback: lang.HistoryMsgID,
	TypesCallback:   lang.TypesMsgID,
	BrewingCallback: lang.BrewingMsgID,
	CultureCallback: lang.CultureMsgID,
}

func (h *Handler) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	h.bot.AnswerCallbackQuery(tgbotapi.NewCallback(query.ID, ""))

	if query.Message == nil {
		logrus.Warn("Callback query without message, ignoring")
		return
	}

	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID

	logrus.WithFields(logrus.Fields{
		"chat_id": chatID,
		"data":    query.Data,
	}).Debug("Callback query")

	if query.Data == TryLuckCallback {
		h.handleTryLuck(chatID, messageID)
		return
	}

	if msgID, ok := topicMessages[query.Data]; ok {
		if err := h.bot.EditMessageText(chatID, messageID, lang.GetMessage(msgID)); err != nil {
			logrus.WithError(err).Warn("Failed to show topic")
		}
		return
	}

	if err := h.bot.EditMessageText(chatID, messageID, lang.GetMessage(lang.TopicUnavailableMsgID)); err != nil {
		logrus.WithError(err).Warn("Failed to show fallback topic text")
	}
}

// handleTryLuck draws a tasting, replaces the button message with the drawn
// list and follows up with the happy or sad photo.
func (h *Handler) handleTryLuck(chatID int64, messageID int) {
	tasting := beer.Draw(h.rnd)

	if err := h.bot.EditMessageText(chatID, messageID, FormatTasting(tasting)); err != nil {
		logrus.WithError(err).Warn("Failed to publish tasting")
	}

	photo := h.cfg.SadImage
	if tasting.Happy() {
		photo = h.cfg.HappyImage
	}

	// Preflight already warned about missing images at startup; a failed
	// photo only degrades the reply, the tasting text is already out.
	if err := h.bot.SendPhotoFile(chatID, photo); err != nil {
		logrus.WithError(err).Warnf("Failed to send tasting photo %s", photo)
	}
}

// FormatTasting renders the numbered tasting list between the catalog header
// and footer.
func FormatTasting(tasting beer.Tasting) string {
	var sb strings.Builder
	sb.WriteString(lang.GetMessage(lang.TastingHeaderMsgID))
	for i, b := range tasting {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, b)
	}
	sb.WriteString(lang.GetMessage(lang.TastingFooterMsgID))
	return sb.String()
}
