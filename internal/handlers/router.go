package handlers

import (
	"math/rand"
	"strings"
	"time"

	"github.com/Ozziff/pivnoi-vopros-bot/internal/bot"
	"github.com/Ozziff/pivnoi-vopros-bot/internal/config"
	"github.com/Ozziff/pivnoi-vopros-bot/internal/lang"
	"github.com/Ozziff/pivnoi-vopros-bot/internal/ratelimit"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Handler routes incoming updates to command, callback and text handlers.
// Updates are processed on a single goroutine, so the unsynchronized
// rand.Rand is fine here.
type Handler struct {
	bot     bot.Service
	cfg     *config.Config
	limiter *ratelimit.TokenBucketLimiter
	rnd     *rand.Rand
}

func New(b bot.Service, cfg *config.Config, limiter *ratelimit.TokenBucketLimiter) *Handler {
	return &Handler{
		bot:     b,
		cfg:     cfg,
		limiter: limiter,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewWithRand is New with an explicit random source, for tests.
func NewWithRand(b bot.Service, cfg *config.Config, limiter *ratelimit.TokenBucketLimiter, rnd *rand.Rand) *Handler {
	h := New(b, cfg, limiter)
	h.rnd = rnd
	return h
}

func (h *Handler) Route(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.handleCallbackQuery(update.CallbackQuery)
		return
	}

	if update.Message == nil {
		return
	}

	LoggingMiddleware(update)

	chatID := update.Message.Chat.ID
	if h.limiter != nil && !h.limiter.Allow(chatID) {
		logrus.WithField("chat_id", chatID).Debug("Dropping update: rate limited")
		return
	}

	if update.Message.IsCommand() {
		command := strings.ToLower(update.Message.Command())
		switch command {
		case "start":
			h.StartHandler(update.Message)
		case "help":
			h.HelpHandler(update.Message)
		case "menu":
			h.MenuHandler(update.Message)
		default:
			logrus.Warnf("Unknown command: %s", command)
			h.bot.SendMessage(chatID, lang.GetMessage(lang.UnknownCommandMsgID), nil)
		}
		return
	}

	h.TextHandler(update.Message)
}
