package handlers

import (
	"strings"

	"github.com/Ozziff/pivnoi-vopros-bot/internal/lang"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// keywordRule maps substrings of a lowercased message to a reply. Rules are
// checked in order; the first match wins.
type keywordRule struct {
	keywords []string
	reply    lang.MessageID
}

var keywordRules = []keywordRule{
	{[]string{"привет", "здравствуй"}, lang.GreetingReplyMsgID},
	{[]string{"спасибо", "благодар"}, lang.ThanksReplyMsgID},
	{[]string{"пока", "до свидания"}, lang.FarewellReplyMsgID},
	{[]string{"ipa", "ипа"}, lang.IPAMsgID},
	{[]string{"лагер"}, lang.LagerMsgID},
	{[]string{"эль"}, lang.AleMsgID},
	{[]string{"стаут"}, lang.StoutMsgID},
	{[]string{"портер"}, lang.PorterMsgID},
	{[]string{"пшеничное"}, lang.WheatMsgID},
	{[]string{"алкоголь", "градус"}, lang.AlcoholMsgID},
	{[]string{"закуска", "закусывать"}, lang.SnackMsgID},
}

// TextHandler answers plain text with the first matching keyword reply,
// falling back to a hint about /menu.
func (h *Handler) TextHandler(message *tgbotapi.Message) {
	text := strings.ToLower(message.Text)

	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				h.bot.SendMessage(message.Chat.ID, lang.GetMessage(rule.reply), nil)
				return
			}
		}
	}

	h.bot.SendMessage(message.Chat.ID, lang.GetMessage(lang.FallbackMsgID), nil)
}
