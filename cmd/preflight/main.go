// Command preflight is the standalone launcher: it runs the startup checks
// and hands off to an arbitrary entrypoint, exiting with the child's own
// exit code.
//
//	preflight [command [args...]]
//
// Without arguments it launches the legacy entrypoint, python3 main.py.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	pvconfig "github.com/Ozziff/pivnoi-vopros-bot/internal/config"
	"github.com/Ozziff/pivnoi-vopros-bot/internal/logutils"
	"github.com/Ozziff/pivnoi-vopros-bot/internal/preflight"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	config, err := pvconfig.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize configuration")
	}
	logutils.InitLogger(config.LogLevel)

	result, err := preflight.Run(".", []string{config.HappyImage, config.SadImage})
	if err != nil {
		logrus.WithError(err).Error("Preflight failed")
		os.Exit(1)
	}

	entrypoint := []string{"python3", "main.py"}
	if len(os.Args) > 1 {
		entrypoint = os.Args[1:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	code, err := preflight.Launch(ctx, result, entrypoint[0], entrypoint[1:]...)
	if err != nil {
		logrus.WithError(err).Error("Failed to start entrypoint")
		os.Exit(1)
	}
	os.Exit(code)
}
