package telemetry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusEmitter records enumeration progress as Prometheus metrics,
// namespaced "biopath_". It counts "reach.stage" events (package enumerate
// emits one per reaction fired by the guided BFS), DP columns filled,
// explosion-guard trips, and tracks the latest observed pathway-table size.
type PrometheusEmitter struct {
	stagesTotal    *prometheus.CounterVec
	columnsTotal   *prometheus.CounterVec
	explosionTrips *prometheus.CounterVec
	tableSize      *prometheus.GaugeVec
}

// NewPrometheusEmitter registers biopath's metrics with registry. A nil
// registry uses prometheus.DefaultRegisterer.
func NewPrometheusEmitter(registry prometheus.Registerer) *PrometheusEmitter {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &PrometheusEmitter{
		stagesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "biopath",
			Name:      "bfs_stages_total",
			Help:      "Guided BFS reach.stage events (reactions fired), labeled by run_id",
		}, []string{"run_id"}),
		columnsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "biopath",
			Name:      "dp_columns_total",
			Help:      "Dynamic-programming pathway-length columns filled, labeled by run_id",
		}, []string{"run_id"}),
		explosionTrips: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "biopath",
			Name:      "explosion_guard_trips_total",
			Help:      "Times the maxnumpath explosion guard skipped a combination",
		}, []string{"run_id"}),
		tableSize: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "biopath",
			Name:      "pathway_table_size",
			Help:      "Distinct reaction-sets recorded in the pathway table",
		}, []string{"run_id"}),
	}
}

// Emit routes event to the matching metric based on its Stage.
func (p *PrometheusEmitter) Emit(event Event) {
	switch event.Stage {
	case "reach.stage":
		p.stagesTotal.WithLabelValues(event.RunID).Inc()
	case "enumerate.column":
		p.columnsTotal.WithLabelValues(event.RunID).Inc()
	case "enumerate.explosion_guard":
		p.explosionTrips.WithLabelValues(event.RunID).Inc()
	case "enumerate.table_size":
		if size, ok := event.Meta["size"].(int); ok {
			p.tableSize.WithLabelValues(event.RunID).Set(float64(size))
		}
	}
}

// Flush is a no-op: Prometheus metrics are pulled, not pushed.
func (p *PrometheusEmitter) Flush(context.Context) error { return nil }
