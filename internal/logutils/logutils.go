package logutils

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// InitLogger configures the global logrus logger. An unknown level falls back to info.
func InitLogger(level string) {
	parsedLevel, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logrus.Warnf("Invalid log level '%s', defaulting to 'info'", level)
		parsedLevel = logrus.InfoLevel
	}
	logrus.SetLevel(parsedLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}
