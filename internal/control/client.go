package control

import (
	"context"
	"fmt"

	"github.com/majorcontext/tracectl/internal/lttng"
	"github.com/majorcontext/tracectl/internal/name"
)

// CommandRunner executes one client command per call. Satisfied by
// *command.Runner; tests substitute a recording fake.
type CommandRunner interface {
	Run(ctx context.Context, argLine string) error
}

// Client creates tracing sessions. It holds the shared runner that all
// handles created through it reuse, and no per-session state of its own.
type Client struct {
	runner CommandRunner
}

// NewClient returns a Client that issues commands through runner.
func NewClient(runner CommandRunner) *Client {
	return &Client{runner: runner}
}

// CreateSession creates a tracing session and returns its handle. An empty
// sessionName gets a generated one; uniqueness is enforced by the external
// tool, which reports a collision as a command failure. A nil output
// creates the session with --no-output.
func (c *Client) CreateSession(ctx context.Context, sessionName string, output lttng.SessionOutput) (*Session, error) {
	if sessionName == "" {
		sessionName = name.Session()
	}

	var outputOption string
	switch out := output.(type) {
	case nil:
		outputOption = "--no-output"
	case lttng.LocalOutput:
		outputOption = "--output " + out.Path
	default:
		return nil, &lttng.UnsupportedError{Kind: "session output", Value: fmt.Sprintf("%T", output)}
	}

	if err := c.runner.Run(ctx, fmt.Sprintf("create %s %s", sessionName, outputOption)); err != nil {
		return nil, err
	}
	return &Session{client: c, name: sessionName, output: output}, nil
}

// Session binds a handle to an already-created session without issuing a
// command. No existence check is made; operations on a stale handle fail
// when the external tool rejects them.
func (c *Client) Session(sessionName string) *Session {
	return &Session{client: c, name: sessionName}
}
