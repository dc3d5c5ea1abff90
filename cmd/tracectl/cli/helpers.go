package cli

import (
	"fmt"
	"path/filepath"

	"github.com/majorcontext/tracectl/internal/command"
	"github.com/majorcontext/tracectl/internal/config"
	"github.com/majorcontext/tracectl/internal/control"
	"github.com/majorcontext/tracectl/internal/env"
	"github.com/majorcontext/tracectl/internal/log"
	"github.com/majorcontext/tracectl/internal/store"
)

// newClient builds the control client against the resolved environment.
func newClient() (*control.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	environment, err := env.Resolve(cfg)
	if err != nil {
		return nil, err
	}
	runner := command.NewRunner(environment, log.Logger())
	return control.NewClient(runner), nil
}

// newStore returns the local session record store.
func newStore() *store.Manager {
	return store.NewManager(filepath.Join(config.Dir(), "sessions"))
}

// resolveSessionName returns nameArg, or the most recently created recorded
// session when nameArg is empty.
func resolveSessionName(manager *store.Manager, nameArg string) (string, error) {
	if nameArg != "" {
		return nameArg, nil
	}
	records, err := manager.List()
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", fmt.Errorf("no recorded sessions; pass a session name")
	}
	return records[0].Name, nil
}
