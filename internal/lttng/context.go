package lttng

import (
	"fmt"
	"strings"
)

// ContextType is a context-enrichment field that can be attached to every
// event recorded by a channel. The variant set is closed: VpidContext,
// VuidContext, VgidContext, and JavaApplicationContext.
type ContextType interface {
	contextType()
}

// VpidContext attaches the virtual process ID to recorded events.
type VpidContext struct{}

// VuidContext attaches the virtual user ID to recorded events.
type VuidContext struct{}

// VgidContext attaches the virtual group ID to recorded events.
type VgidContext struct{}

// JavaApplicationContext attaches an application-provided field retrieved
// through the agent's named context retriever.
type JavaApplicationContext struct {
	RetrieverName string
	FieldName     string
}

func (VpidContext) contextType()            {}
func (VuidContext) contextType()            {}
func (VgidContext) contextType()            {}
func (JavaApplicationContext) contextType() {}

// ParseContextType maps a user-facing context name to its ContextType.
// Java application contexts are spelled `$app.<retriever>:<field>`.
func ParseContextType(s string) (ContextType, error) {
	switch s {
	case "vpid":
		return VpidContext{}, nil
	case "vuid":
		return VuidContext{}, nil
	case "vgid":
		return VgidContext{}, nil
	}
	if rest, ok := strings.CutPrefix(s, "$app."); ok {
		retriever, field, ok := strings.Cut(rest, ":")
		if ok && retriever != "" && field != "" {
			return JavaApplicationContext{RetrieverName: retriever, FieldName: field}, nil
		}
	}
	return nil, &UnsupportedError{Kind: "context type", Value: s}
}

// ContextTypeName returns the token passed to `lttng add-context --type`.
func ContextTypeName(c ContextType) (string, error) {
	switch ct := c.(type) {
	case VpidContext:
		return "vpid", nil
	case VuidContext:
		return "vuid", nil
	case VgidContext:
		return "vgid", nil
	case JavaApplicationContext:
		return fmt.Sprintf("$app.%s:%s", ct.RetrieverName, ct.FieldName), nil
	default:
		return "", &UnsupportedError{Kind: "context type", Value: fmt.Sprintf("%T", c)}
	}
}
