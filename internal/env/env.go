// Package env resolves the execution environment of the lttng client: the
// executable to invoke and the home directory exported to it.
package env

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/majorcontext/tracectl/internal/config"
)

// clientBinary is the executable looked up on PATH when no explicit
// client path is configured.
const clientBinary = "lttng"

// Environment is the resolved execution environment. It is immutable after
// construction and satisfies command.Environment.
type Environment struct {
	clientPath string
	home       string
}

// Resolve builds an Environment from cfg. The client path falls back to a
// PATH lookup; the home directory falls back to the ambient LTTNG_HOME and
// then ~/.lttng, created on demand.
func Resolve(cfg *config.Config) (*Environment, error) {
	clientPath := cfg.ClientPath
	if clientPath == "" {
		path, err := exec.LookPath(clientBinary)
		if err != nil {
			return nil, fmt.Errorf("lttng client not found: %w", err)
		}
		clientPath = path
	}

	home := cfg.Home
	if home == "" {
		home = os.Getenv("LTTNG_HOME")
	}
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		home = filepath.Join(userHome, ".lttng")
	}
	if err := os.MkdirAll(home, 0o755); err != nil {
		return nil, fmt.Errorf("create home directory %s: %w", home, err)
	}

	return &Environment{clientPath: clientPath, home: home}, nil
}

// ClientPath returns the resolved lttng executable path.
func (e *Environment) ClientPath() string { return e.clientPath }

// Home returns the directory exported as LTTNG_HOME.
func (e *Environment) Home() string { return e.home }
