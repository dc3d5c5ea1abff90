package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majorcontext/tracectl/internal/control"
	"github.com/majorcontext/tracectl/internal/lttng"
)

func TestSessionTrackerMapping(t *testing.T) {
	session := control.NewClient(nil).Session("sess")

	tests := []struct {
		domain    lttng.TracingDomain
		attribute lttng.ProcessAttribute
	}{
		{lttng.DomainKernel, lttng.AttributePID},
		{lttng.DomainKernel, lttng.AttributeVPID},
		{lttng.DomainKernel, lttng.AttributeUID},
		{lttng.DomainKernel, lttng.AttributeVUID},
		{lttng.DomainKernel, lttng.AttributeGID},
		{lttng.DomainKernel, lttng.AttributeVGID},
		{lttng.DomainUser, lttng.AttributeVPID},
		{lttng.DomainUser, lttng.AttributeVUID},
		{lttng.DomainUser, lttng.AttributeVGID},
	}
	for _, tt := range tests {
		tracker, err := sessionTracker(session, tt.domain, tt.attribute)
		require.NoError(t, err, "%s %s", tt.domain, tt.attribute)
		assert.Equal(t, tt.attribute, tracker.Attribute())
	}
}

func TestSessionTrackerUnsupportedPairs(t *testing.T) {
	session := control.NewClient(nil).Session("sess")

	// The user domain has no real PID, the JUL domain no trackers at all.
	_, err := sessionTracker(session, lttng.DomainUser, lttng.AttributePID)
	assert.Error(t, err)

	_, err = sessionTracker(session, lttng.DomainJUL, lttng.AttributeVPID)
	assert.Error(t, err)
}
