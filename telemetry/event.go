package telemetry

// Event is one observable moment in a BFS run or an enumeration run.
type Event struct {
	// RunID identifies the enumeration or BFS invocation that emitted this
	// event, letting a caller correlate events across concurrent runs.
	RunID string

	// Stage names the pipeline phase this event belongs to, e.g.
	// "reach.stage", "enumerate.column", "enumerate.explosion_guard".
	Stage string

	// Meta carries stage-specific structured data. Keys used in this module:
	// "stage" and "reaction" (reach.stage), "column" (enumerate.column),
	// "reaction" (enumerate.explosion_guard), "size" (read by
	// PrometheusEmitter for enumerate.table_size).
	Meta map[string]any
}
