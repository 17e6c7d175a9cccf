package preflight

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ozziff/pivnoi-vopros-bot/internal/utils"
)

func TestRunMissingToken(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T)
	}{
		{
			name: "Unset token",
			setup: func(t *testing.T) {
				t.Setenv(TokenEnv, "")
				os.Unsetenv(TokenEnv)
			},
		},
		{
			name: "Empty token",
			setup: func(t *testing.T) {
				t.Setenv(TokenEnv, "")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			result, err := Run(t.TempDir(), nil)
			if err == nil {
				t.Fatal("Expected error for missing token, got nil")
			}
			if result != nil {
				t.Errorf("Expected nil result on failure, got %+v", result)
			}
			if !errors.Is(err, utils.ErrMissingCredential) {
				t.Errorf("Expected ErrMissingCredential, got %v", err)
			}
			if !strings.Contains(err.Error(), "BOT_TOKEN") {
				t.Errorf("Error message should name BOT_TOKEN, got %q", err.Error())
			}
		})
	}
}

func TestRunAnyNonEmptyTokenPasses(t *testing.T) {
	for _, token := range []string{"abc123", "not a real token", " "} {
		t.Setenv(TokenEnv, token)
		t.Setenv(PortEnv, "8080")

		result, err := Run(t.TempDir(), nil)
		if err != nil {
			t.Fatalf("Token %q should pass the credential check: %v", token, err)
		}
		if result.Token != token {
			t.Errorf("Expected token %q, got %q", token, result.Token)
		}
	}
}

func TestRunPortDefaulting(t *testing.T) {
	t.Setenv(TokenEnv, "abc123")
	t.Setenv(PortEnv, "")

	result, err := Run(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Port != DefaultPort {
		t.Errorf("Expected default port %s, got %s", DefaultPort, result.Port)
	}
	if !result.PortDefaulted {
		t.Error("Expected PortDefaulted to be true")
	}
}

func TestRunPortPassedThroughVerbatim(t *testing.T) {
	// Numeric validation is deliberately absent: garbage goes through as-is.
	for _, port := range []string{"8080", "not-a-number", "99999"} {
		t.Setenv(TokenEnv, "abc123")
		t.Setenv(PortEnv, port)

		result, err := Run(t.TempDir(), nil)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if result.Port != port {
			t.Errorf("Expected port %q passed through, got %q", port, result.Port)
		}
		if result.PortDefaulted {
			t.Error("Expected PortDefaulted to be false")
		}
	}
}

func TestRunAssetChecksNeverFatal(t *testing.T) {
	tests := []struct {
		name            string
		present         []string
		expectedMissing int
	}{
		{"Both present", []string{"zhiguli_happy.png", "zhiguli_sad.png"}, 0},
		{"One missing", []string{"zhiguli_happy.png"}, 1},
		{"Both missing", nil, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(TokenEnv, "abc123")
			t.Setenv(PortEnv, "8080")

			dir := t.TempDir()
			for _, name := range tt.present {
				if err := os.WriteFile(filepath.Join(dir, name), []byte("png"), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			result, err := Run(dir, nil)
			if err != nil {
				t.Fatalf("Missing assets must not be fatal: %v", err)
			}
			if len(result.MissingAssets) != tt.expectedMissing {
				t.Errorf("Expected %d missing assets, got %v", tt.expectedMissing, result.MissingAssets)
			}
		})
	}
}

func TestBuildChildEnv(t *testing.T) {
	result := &Result{Port: "10000"}

	parent := []string{"HOME=/root", "PORT=8080", "LANG=ru"}
	env := BuildChildEnv(parent, result)

	if got := findEnv(env, "PORT"); got != "10000" {
		t.Errorf("Expected PORT=10000 in child env, got %q", got)
	}
	if parent[1] != "PORT=8080" {
		t.Errorf("Parent environment was mutated: %v", parent)
	}

	// Without an existing PORT entry the override is appended.
	env = BuildChildEnv([]string{"HOME=/root"}, result)
	if got := findEnv(env, "PORT"); got != "10000" {
		t.Errorf("Expected PORT=10000 appended, got %q", got)
	}
}

func findEnv(env []string, key string) string {
	for _, kv := range env {
		if strings.HasPrefix(kv, key+"=") {
			return strings.TrimPrefix(kv, key+"=")
		}
	}
	return ""
}

func TestLaunchPropagatesExitCode(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	result := &Result{Port: "10000"}

	code, err := Launch(context.Background(), result, "sh", "-c", "exit 7")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if code != 7 {
		t.Errorf("Expected exit code 7, got %d", code)
	}

	code, err = Launch(context.Background(), result, "sh", "-c", "true")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
}

func TestLaunchSignalKilledChildMapsToOne(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	result := &Result{Port: "10000"}

	// The child kills itself, so the wait status carries a signal instead
	// of an exit code.
	code, err := Launch(context.Background(), result, "sh", "-c", "kill $$")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if code != 1 {
		t.Errorf("Expected signal death mapped to exit code 1, got %d", code)
	}
}

func TestLaunchChildSeesEffectivePort(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	result := &Result{Port: "10000"}

	code, err := Launch(context.Background(), result, "sh", "-c", `[ "$PORT" = "10000" ]`)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if code != 0 {
		t.Error("Child did not observe PORT=10000")
	}
}
