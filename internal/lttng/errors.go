package lttng

import "fmt"

// UnsupportedError is returned when a vocabulary value has no translation
// in the lttng client's argument grammar. It is always produced before any
// subprocess runs; the caller can recover by choosing a supported variant.
type UnsupportedError struct {
	Kind  string // what was being translated, e.g. "domain", "context type"
	Value string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s %q is not supported by the lttng client", e.Kind, e.Value)
}
