package control

import (
	"context"
	"fmt"
	"strings"

	"github.com/majorcontext/tracectl/internal/lttng"
)

// Channel is a handle on one recording channel, bound to exactly one
// session and one tracing domain.
type Channel struct {
	client  *Client
	session *Session
	name    string
	domain  lttng.TracingDomain
}

// Name returns the channel's name.
func (c *Channel) Name() string { return c.name }

// Domain returns the tracing domain the channel records.
func (c *Channel) Domain() lttng.TracingDomain { return c.domain }

// AddContext attaches a context-enrichment field to every event the channel
// records.
func (c *Channel) AddContext(ctx context.Context, contextType lttng.ContextType) error {
	domainOption, err := lttng.DomainOptionName(c.domain)
	if err != nil {
		return err
	}
	typeName, err := lttng.ContextTypeName(contextType)
	if err != nil {
		return err
	}
	argLine := fmt.Sprintf("add-context --session %s --channel %s --%s --type %s",
		c.session.name, c.name, domainOption, typeName)
	return c.client.runner.Run(ctx, argLine)
}

// AddRecordingRule enables an event rule on the channel. Only tracepoint
// rules are supported; anything else fails before a command is issued.
//
// Clause order is fixed: enable-event base, domain flag, name pattern (or
// --all), filter expression, log level flag, exclusions.
func (c *Channel) AddRecordingRule(ctx context.Context, rule lttng.EventRule) error {
	var b strings.Builder
	fmt.Fprintf(&b, "enable-event --session %s --channel %s", c.session.name, c.name)

	var tracepoint lttng.TracepointEventRule
	switch r := rule.(type) {
	case lttng.UserTracepointEventRule:
		tracepoint = r.TracepointEventRule
		b.WriteString(" --userspace")
	case lttng.KernelTracepointEventRule:
		tracepoint = r.TracepointEventRule
		b.WriteString(" --kernel")
	default:
		return &lttng.UnsupportedError{Kind: "event rule", Value: fmt.Sprintf("%T", rule)}
	}

	if tracepoint.NamePattern != "" {
		b.WriteString(" " + tracepoint.NamePattern)
	} else {
		b.WriteString(" --all")
	}

	if tracepoint.FilterExpression != "" {
		b.WriteString(" " + tracepoint.FilterExpression)
	}

	switch level := tracepoint.LogLevel.(type) {
	case nil:
	case lttng.LogLevelAsSevereAs:
		fmt.Fprintf(&b, " --loglevel %d", level.Level)
	case lttng.LogLevelExactly:
		fmt.Fprintf(&b, " --loglevel-only %d", level.Level)
	default:
		return &lttng.UnsupportedError{Kind: "log level rule", Value: fmt.Sprintf("%T", tracepoint.LogLevel)}
	}

	if len(tracepoint.NamePatternExclusions) > 0 {
		b.WriteString(" --exclude " + strings.Join(tracepoint.NamePatternExclusions, ","))
	}

	return c.client.runner.Run(ctx, b.String())
}
