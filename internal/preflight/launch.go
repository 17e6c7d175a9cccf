package preflight

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Launch hands control to the application entrypoint: the child is spawned
// with the augmented environment, its output is streamed through, and its
// own exit code is returned once it terminates. Spawn-and-wait rather than
// process replacement, so launcher diagnostics stay ordered before child
// output on all platforms.
func Launch(ctx context.Context, result *Result, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = BuildChildEnv(os.Environ(), result)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	logrus.Infof("Handing off to entrypoint: %s", name)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// A signal-killed child reports -1; keep the contract to real
			// exit codes and surface it as a plain failure.
			logrus.Warnf("Entrypoint terminated by signal: %v", exitErr)
			return 1, nil
		}
		return code, nil
	}
	return 0, err
}
