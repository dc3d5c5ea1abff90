package lttng

import "fmt"

// TracingDomain identifies which instrumentation domain a channel, rule, or
// tracker applies to.
type TracingDomain int

const (
	DomainUser TracingDomain = iota
	DomainKernel
	DomainLog4j
	DomainJUL
	DomainPython
)

func (d TracingDomain) String() string {
	switch d {
	case DomainUser:
		return "user"
	case DomainKernel:
		return "kernel"
	case DomainLog4j:
		return "log4j"
	case DomainJUL:
		return "jul"
	case DomainPython:
		return "python"
	default:
		return fmt.Sprintf("TracingDomain(%d)", int(d))
	}
}

// DomainOptionName returns the option token the lttng client uses to select
// a tracing domain (e.g. --userspace).
func DomainOptionName(d TracingDomain) (string, error) {
	switch d {
	case DomainUser:
		return "userspace", nil
	case DomainKernel:
		return "kernel", nil
	case DomainLog4j:
		return "log4j", nil
	case DomainJUL:
		return "jul", nil
	case DomainPython:
		return "python", nil
	default:
		return "", &UnsupportedError{Kind: "domain", Value: d.String()}
	}
}

// ParseDomain maps a user-facing domain name to its TracingDomain. Accepted
// spellings match the client's option names.
func ParseDomain(s string) (TracingDomain, error) {
	switch s {
	case "user", "userspace":
		return DomainUser, nil
	case "kernel":
		return DomainKernel, nil
	case "log4j":
		return DomainLog4j, nil
	case "jul":
		return DomainJUL, nil
	case "python":
		return DomainPython, nil
	default:
		return 0, &UnsupportedError{Kind: "domain", Value: s}
	}
}
