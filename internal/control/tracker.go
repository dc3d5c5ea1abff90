package control

import (
	"context"
	"fmt"

	"github.com/majorcontext/tracectl/internal/lttng"
)

// ValueTypeError reports a tracker value whose type is not in the allowed
// set for its process attribute (symbolic names are only valid for PID and
// VPID). It is produced before any subprocess runs.
type ValueTypeError struct {
	Attribute lttng.ProcessAttribute
	Value     lttng.TrackerValue
}

func (e *ValueTypeError) Error() string {
	return fmt.Sprintf("value of type %T is not allowed for process attribute %s", e.Value, e.Attribute)
}

// ProcessAttributeTracker is the allow-list filter for one process
// attribute within a (session, domain) pair. It is a capability object:
// unnamed, created on demand, with no destroy operation.
type ProcessAttributeTracker struct {
	client    *Client
	session   *Session
	domain    lttng.TracingDomain
	attribute lttng.ProcessAttribute
}

// Attribute returns the process attribute the tracker filters on.
func (t *ProcessAttributeTracker) Attribute() lttng.ProcessAttribute { return t.attribute }

// Track adds value to the attribute's allow list.
func (t *ProcessAttributeTracker) Track(ctx context.Context, value lttng.TrackerValue) error {
	return t.run(ctx, "track", value)
}

// Untrack removes value from the attribute's allow list.
func (t *ProcessAttributeTracker) Untrack(ctx context.Context, value lttng.TrackerValue) error {
	return t.run(ctx, "untrack", value)
}

func (t *ProcessAttributeTracker) run(ctx context.Context, verb string, value lttng.TrackerValue) error {
	if err := t.checkValue(value); err != nil {
		return err
	}

	attrOption, err := lttng.ProcessAttributeOptionName(t.attribute)
	if err != nil {
		return err
	}
	domainOption, err := lttng.DomainOptionName(t.domain)
	if err != nil {
		return err
	}

	argLine := fmt.Sprintf("%s --session %s --%s --%s %s",
		verb, t.session.name, domainOption, attrOption, lttng.Token(value))
	return t.client.runner.Run(ctx, argLine)
}

// checkValue enforces the attribute's allowed value types: PID and VPID
// accept integers and symbolic names, everything else integers only.
func (t *ProcessAttributeTracker) checkValue(value lttng.TrackerValue) error {
	switch value.(type) {
	case lttng.IntegerValue:
		return nil
	case lttng.NameValue:
		if t.attribute == lttng.AttributePID || t.attribute == lttng.AttributeVPID {
			return nil
		}
		return &ValueTypeError{Attribute: t.attribute, Value: value}
	default:
		return &ValueTypeError{Attribute: t.attribute, Value: value}
	}
}
