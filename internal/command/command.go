// Package command executes single invocations of the lttng command-line
// client and translates their outcome into typed errors.
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/google/shlex"
)

// homeEnvVar is injected into every child process so the client resolves
// its runtime state under the configured home directory.
const homeEnvVar = "LTTNG_HOME"

// Environment supplies the two facts the executor needs from the
// surrounding environment: where the client binary lives and where its
// home directory is.
type Environment interface {
	// ClientPath returns the resolved path of the lttng executable.
	ClientPath() string
	// Home returns the directory exported as LTTNG_HOME to the client.
	Home() string
}

// CommandError reports a client invocation that exited non-zero. It carries
// the original argument string and the full combined output so callers can
// surface the client's own diagnostics.
type CommandError struct {
	Args   string
	Output string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("lttng %s: %s", e.Args, strings.TrimSpace(e.Output))
}

// Runner invokes the lttng client one command at a time. Each call owns the
// full lifetime of its subprocess; Runner itself holds no mutable state and
// is safe for concurrent use.
type Runner struct {
	env    Environment
	logger *slog.Logger
}

// NewRunner returns a Runner bound to env. A nil logger falls back to the
// process default.
func NewRunner(env Environment, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{env: env, logger: logger}
}

// Run executes the client with the given argument line. The line is split
// with shell word rules (quoting respected), so callers may embed quoted
// filter expressions. Standard error is merged into standard output; the
// captured output is decoded as UTF-8 text.
//
// A zero exit status returns nil. A non-zero exit status mirrors every
// output line to the logger and returns a *CommandError. No retry is ever
// attempted: client commands such as create and destroy are not safely
// repeatable.
func (r *Runner) Run(ctx context.Context, argLine string) error {
	tokens, err := shlex.Split(argLine)
	if err != nil {
		return fmt.Errorf("split arguments %q: %w", argLine, err)
	}

	r.logger.Debug("lttng " + argLine)

	// Copy the ambient environment; never mutate it. A trailing duplicate
	// key wins in os/exec, so appending the override is enough.
	env := append(os.Environ(), homeEnvVar+"="+r.env.Home())

	cmd := exec.CommandContext(ctx, r.env.ClientPath(), tokens...)
	cmd.Env = env

	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("run %s: %w", r.env.ClientPath(), err)
		}
		output := string(out)
		for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
			r.logger.Debug(line)
		}
		return &CommandError{Args: argLine, Output: output}
	}
	return nil
}
