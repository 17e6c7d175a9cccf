package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	pvbot "github.com/Ozziff/pivnoi-vopros-bot/internal/bot"
	pvconfig "github.com/Ozziff/pivnoi-vopros-bot/internal/config"
	"github.com/Ozziff/pivnoi-vopros-bot/internal/handlers"
	"github.com/Ozziff/pivnoi-vopros-bot/internal/lang"
	"github.com/Ozziff/pivnoi-vopros-bot/internal/logutils"
	"github.com/Ozziff/pivnoi-vopros-bot/internal/preflight"
	"github.com/Ozziff/pivnoi-vopros-bot/internal/ratelimit"
	"github.com/Ozziff/pivnoi-vopros-bot/internal/sentryutil"
	"github.com/Ozziff/pivnoi-vopros-bot/internal/shutdown"
	"github.com/Ozziff/pivnoi-vopros-bot/internal/web"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err == nil {
		logrus.Info("Loaded environment from .env")
	}

	config, err := pvconfig.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize configuration")
	}

	logutils.InitLogger(config.LogLevel)
	logrus.WithFields(logrus.Fields{
		"version":    Version,
		"build_time": BuildTime,
	}).Info("Starting Pivnoi Vopros Bot")

	// The only fatal startup condition lives here: a missing BOT_TOKEN
	// aborts with exit status 1 before anything else is started.
	result, err := preflight.Run(".", []string{config.HappyImage, config.SadImage})
	if err != nil {
		logrus.WithError(err).Fatal("Preflight failed")
	}

	sentryutil.Init(config)
	defer sentryutil.Flush()

	lang.SetupLang(config)

	botInstance, err := pvbot.InitBot(config)
	if err != nil {
		logrus.WithError(err).Fatal("Bot initialization failed")
	}

	webServer := web.NewServer(net.JoinHostPort("0.0.0.0", result.Port))
	go func() {
		if serveErr := webServer.Start(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logrus.WithError(serveErr).Error("Keep-alive server failed")
			sentryutil.CaptureError(serveErr, map[string]string{"component": "web"})
		}
	}()

	limiter := ratelimit.NewTokenBucketLimiter(
		config.RateLimitSettings.Requests,
		config.RateLimitSettings.RefillInterval,
	)
	handler := handlers.New(botInstance, config, limiter)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Confirm the backlog before polling so a restart does not replay it.
	offset := botInstance.DropPendingUpdates()
	go processUpdates(ctx, botInstance, config, handler, offset)

	logrus.Info("Pivnoi Vopros Bot started successfully")

	manager := shutdown.NewManager(shutdownTimeout)
	manager.Register("keep-alive-server", webServer.Shutdown)
	manager.Register("telegram-updates", func(context.Context) error {
		cancel()
		botInstance.Api.StopReceivingUpdates()
		return nil
	})

	if err := manager.Wait(); err != nil {
		logrus.WithError(err).Error("Graceful shutdown finished with errors")
	}
	logrus.Info("Pivnoi Vopros Bot shutdown complete")
}

func processUpdates(ctx context.Context, bot *pvbot.Bot, config *pvconfig.Config, handler *handlers.Handler, offset int) {
	u := tgbotapi.NewUpdate(offset)
	u.Timeout = int(config.UpdateTimeout / time.Second)
	updates := bot.Api.GetUpdatesChan(u)

	for {
		select {
		case update := <-updates:
			handler.Route(update)
		case <-ctx.Done():
			logrus.Info("Stopping update processing")
			return
		}
	}
}
