// Package telemetry provides structured, pluggable event emission for the
// enumeration pipeline (reach's BFS stages, enumerate's DP columns).
//
// The library never logs directly (no bare fmt.Println/log.Print): every
// observable moment is an Event handed to an Emitter, which a caller wires
// up to whatever backend it wants — nothing, a writer, Prometheus, or an
// OpenTelemetry tracer. The default, NullEmitter, costs nothing: every
// package accepting an Emitter option falls back to it.
package telemetry
