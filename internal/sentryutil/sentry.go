package sentryutil

import (
	"time"

	"github.com/Ozziff/pivnoi-vopros-bot/internal/config"
	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// Init wires Sentry error tracking. A missing DSN disables it without
// blocking startup.
func Init(cfg *config.Config) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.SentryEnv,
	})
	if err != nil {
		logrus.WithError(err).Warn("Sentry init failed (non-blocking)")
		return
	}
	if cfg.SentryDSN == "" {
		logrus.Debug("SENTRY_DSN empty, error tracking disabled")
	} else {
		logrus.Info("Sentry initialized")
	}
}

func Flush() { sentry.Flush(2 * time.Second) }

// CaptureError reports err with optional tags. Nil errors are ignored.
func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}
