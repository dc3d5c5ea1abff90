// Package control is the typed entry point of the tracing control plane.
// A Client creates sessions; sessions hand out channels and
// process-attribute trackers. Every operation on a handle formats one
// argument line from the domain vocabulary and delegates it to the shared
// command runner — handles hold identity and back-references only, never
// the external resource's lifetime.
package control
