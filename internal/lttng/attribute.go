package lttng

import (
	"fmt"
	"strconv"
)

// ProcessAttribute is the kind of identifier a process-attribute tracker
// filters on.
type ProcessAttribute int

const (
	AttributePID ProcessAttribute = iota
	AttributeVPID
	AttributeUID
	AttributeVUID
	AttributeGID
	AttributeVGID
)

func (a ProcessAttribute) String() string {
	switch a {
	case AttributePID:
		return "pid"
	case AttributeVPID:
		return "vpid"
	case AttributeUID:
		return "uid"
	case AttributeVUID:
		return "vuid"
	case AttributeGID:
		return "gid"
	case AttributeVGID:
		return "vgid"
	default:
		return fmt.Sprintf("ProcessAttribute(%d)", int(a))
	}
}

// ProcessAttributeOptionName returns the option token the lttng client uses
// for a tracked attribute (e.g. --vpid).
func ProcessAttributeOptionName(a ProcessAttribute) (string, error) {
	switch a {
	case AttributePID, AttributeVPID, AttributeUID, AttributeVUID, AttributeGID, AttributeVGID:
		return a.String(), nil
	default:
		return "", &UnsupportedError{Kind: "process attribute", Value: a.String()}
	}
}

// ParseProcessAttribute maps a user-facing attribute name to its
// ProcessAttribute.
func ParseProcessAttribute(s string) (ProcessAttribute, error) {
	switch s {
	case "pid":
		return AttributePID, nil
	case "vpid":
		return AttributeVPID, nil
	case "uid":
		return AttributeUID, nil
	case "vuid":
		return AttributeVUID, nil
	case "gid":
		return AttributeGID, nil
	case "vgid":
		return AttributeVGID, nil
	default:
		return 0, &UnsupportedError{Kind: "process attribute", Value: s}
	}
}

// TrackerValue is a value accepted by a process-attribute tracker: either a
// numeric identifier or, for PID/VPID only, a symbolic process name.
type TrackerValue interface {
	trackerValue() string
}

// IntegerValue is a numeric process/user/group identifier.
type IntegerValue int

// NameValue is a symbolic process name, accepted only by PID and VPID
// trackers.
type NameValue string

func (v IntegerValue) trackerValue() string { return strconv.Itoa(int(v)) }
func (v NameValue) trackerValue() string    { return string(v) }

// Token returns the literal argument token for v.
func Token(v TrackerValue) string { return v.trackerValue() }
