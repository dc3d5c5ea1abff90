package control

import (
	"context"
	"fmt"

	"github.com/majorcontext/tracectl/internal/lttng"
	"github.com/majorcontext/tracectl/internal/name"
)

// Session is a handle on one external tracing session. It never owns the
// external resource: dropping the handle has no side effect, and an
// explicit Destroy is required to release the session.
type Session struct {
	client *Client
	name   string
	output lttng.SessionOutput
}

// Name returns the session's unique name.
func (s *Session) Name() string { return s.name }

// Output returns the output location the session was created with, or nil
// for a no-output session.
func (s *Session) Output() lttng.SessionOutput { return s.output }

// Start begins recording.
func (s *Session) Start(ctx context.Context) error {
	return s.client.runner.Run(ctx, "start "+s.name)
}

// Stop halts recording without destroying the session.
func (s *Session) Stop(ctx context.Context) error {
	return s.client.runner.Run(ctx, "stop "+s.name)
}

// Destroy releases the external session. The handle is not usable
// afterwards.
func (s *Session) Destroy(ctx context.Context) error {
	return s.client.runner.Run(ctx, "destroy "+s.name)
}

// AddChannel enables a recording channel in the given domain and returns
// its handle. An empty channelName gets a generated one; name uniqueness
// within the session and domain is enforced by the external tool.
func (s *Session) AddChannel(ctx context.Context, domain lttng.TracingDomain, channelName string) (*Channel, error) {
	domainOption, err := lttng.DomainOptionName(domain)
	if err != nil {
		return nil, err
	}
	if channelName == "" {
		channelName = name.Channel()
	}

	argLine := fmt.Sprintf("enable-channel --session %s --%s %s", s.name, domainOption, channelName)
	if err := s.client.runner.Run(ctx, argLine); err != nil {
		return nil, err
	}
	return &Channel{client: s.client, session: s, name: channelName, domain: domain}, nil
}

// Channel binds a handle to an already-enabled channel without issuing a
// command.
func (s *Session) Channel(domain lttng.TracingDomain, channelName string) *Channel {
	return &Channel{client: s.client, session: s, name: channelName, domain: domain}
}

// AddContext validates contextType but issues no command: the command-line
// client has no session-scoped add-context without a channel, so
// session-level context propagation stays deferred. Unsupported variants
// still fail exactly as they do on the channel path.
func (s *Session) AddContext(ctx context.Context, contextType lttng.ContextType) error {
	_, err := lttng.ContextTypeName(contextType)
	return err
}

// KernelPidTracker returns the tracker for kernel-domain process IDs.
func (s *Session) KernelPidTracker() *ProcessAttributeTracker {
	return s.tracker(lttng.DomainKernel, lttng.AttributePID)
}

// KernelVpidTracker returns the tracker for kernel-domain virtual process IDs.
func (s *Session) KernelVpidTracker() *ProcessAttributeTracker {
	return s.tracker(lttng.DomainKernel, lttng.AttributeVPID)
}

// UserVpidTracker returns the tracker for user-domain virtual process IDs.
func (s *Session) UserVpidTracker() *ProcessAttributeTracker {
	return s.tracker(lttng.DomainUser, lttng.AttributeVPID)
}

// KernelUidTracker returns the tracker for kernel-domain user IDs.
func (s *Session) KernelUidTracker() *ProcessAttributeTracker {
	return s.tracker(lttng.DomainKernel, lttng.AttributeUID)
}

// KernelVuidTracker returns the tracker for kernel-domain virtual user IDs.
func (s *Session) KernelVuidTracker() *ProcessAttributeTracker {
	return s.tracker(lttng.DomainKernel, lttng.AttributeVUID)
}

// UserVuidTracker returns the tracker for user-domain virtual user IDs.
func (s *Session) UserVuidTracker() *ProcessAttributeTracker {
	return s.tracker(lttng.DomainUser, lttng.AttributeVUID)
}

// KernelGidTracker returns the tracker for kernel-domain group IDs.
func (s *Session) KernelGidTracker() *ProcessAttributeTracker {
	return s.tracker(lttng.DomainKernel, lttng.AttributeGID)
}

// KernelVgidTracker returns the tracker for kernel-domain virtual group IDs.
func (s *Session) KernelVgidTracker() *ProcessAttributeTracker {
	return s.tracker(lttng.DomainKernel, lttng.AttributeVGID)
}

// UserVgidTracker returns the tracker for user-domain virtual group IDs.
func (s *Session) UserVgidTracker() *ProcessAttributeTracker {
	return s.tracker(lttng.DomainUser, lttng.AttributeVGID)
}

func (s *Session) tracker(domain lttng.TracingDomain, attr lttng.ProcessAttribute) *ProcessAttributeTracker {
	return &ProcessAttributeTracker{client: s.client, session: s, domain: domain, attribute: attr}
}
