// Package preflight validates the process environment before the bot is
// allowed to start. A missing BOT_TOKEN is the only fatal condition; a
// missing PORT gets a default and missing tasting images only produce
// warnings.
package preflight

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Ozziff/pivnoi-vopros-bot/internal/utils"
	"github.com/sirupsen/logrus"
)

const (
	TokenEnv = "BOT_TOKEN"
	PortEnv  = "PORT"

	DefaultPort = "10000"
)

// DefaultAssets are the tasting images expected next to the binary.
func DefaultAssets() []string {
	return []string{"zhiguli_happy.png", "zhiguli_sad.png"}
}

// Result is the immutable outcome of a successful preflight run. It is built
// once and passed explicitly to whatever starts the application; the parent
// environment is never mutated.
type Result struct {
	Token         string
	Port          string
	PortDefaulted bool
	MissingAssets []string
}

// Run performs the startup checks: credential, port defaulting and asset
// presence. Asset paths are resolved relative to dir. The returned error is
// non-nil only for the missing-credential case.
//
// PORT is deliberately not validated as numeric: any non-empty value is
// passed through verbatim, matching the legacy launcher contract.
func Run(dir string, assets []string) (*Result, error) {
	logrus.Info("Starting preflight checks")

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logWorkingDirectory(dir)
	}

	// Non-emptiness is the whole check: any non-empty token passes.
	token := os.Getenv(TokenEnv)
	if token == "" {
		return nil, utils.WrapError(utils.ErrMissingCredential,
			"BOT_TOKEN environment variable is not set", nil)
	}

	result := &Result{Token: token}

	port := os.Getenv(PortEnv)
	if port == "" {
		result.Port = DefaultPort
		result.PortDefaulted = true
		logrus.Infof("PORT not set, defaulting to %s", DefaultPort)
	} else {
		result.Port = port
		logrus.Infof("Using supplied PORT %s", port)
	}

	if len(assets) == 0 {
		assets = DefaultAssets()
	}
	for _, asset := range assets {
		path := asset
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, asset)
		}
		if _, err := os.Stat(path); err != nil {
			result.MissingAssets = append(result.MissingAssets, asset)
			logrus.Warnf("%s not found, tasting photos will be unavailable", asset)
		} else {
			logrus.Infof("Found %s", asset)
		}
	}

	logrus.Info("Preflight checks passed")
	return result, nil
}

// logWorkingDirectory emits the diagnostics of the verbose launcher variant:
// the resolved working directory and its listing.
func logWorkingDirectory(dir string) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	logrus.Debugf("Working directory: %s", abs)

	entries, err := os.ReadDir(dir)
	if err != nil {
		logrus.WithError(err).Debug("Failed to list working directory")
		return
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	logrus.Debugf("Directory contents: %s", strings.Join(names, " "))
}

// BuildChildEnv returns a copy of parent with PORT pinned to the effective
// preflight value. The parent slice is left untouched.
func BuildChildEnv(parent []string, result *Result) []string {
	env := make([]string, 0, len(parent)+1)
	for _, kv := range parent {
		if strings.HasPrefix(kv, PortEnv+"=") {
			continue
		}
		env = append(env, kv)
	}
	return append(env, PortEnv+"="+result.Port)
}
