// Package lttng defines the domain vocabulary of the LTTng control plane:
// tracing domains, context-enrichment types, event rules, process
// attributes, and the translators that map each of them to the literal
// option tokens the lttng command-line client expects.
//
// Everything here is pure data and pure functions. Variant sets are closed;
// every translator is an exhaustive switch whose default arm returns an
// *UnsupportedError rather than silently falling back.
package lttng
