package telemetry_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/biopath/telemetry"
)

func TestPrometheusEmitter_RoutesByStage(t *testing.T) {
	reg := prometheus.NewRegistry()
	e := telemetry.NewPrometheusEmitter(reg)

	e.Emit(telemetry.Event{RunID: "r1", Stage: "reach.stage"})
	e.Emit(telemetry.Event{RunID: "r1", Stage: "enumerate.column"})
	e.Emit(telemetry.Event{RunID: "r1", Stage: "enumerate.explosion_guard"})
	e.Emit(telemetry.Event{RunID: "r1", Stage: "enumerate.table_size", Meta: map[string]any{"size": 42}})

	families, err := reg.Gather()
	require.NoError(t, err)

	seen := make(map[string]float64)
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			seen[fam.GetName()] = counterOrGaugeValue(m)
		}
	}

	require.Equal(t, float64(1), seen["biopath_bfs_stages_total"])
	require.Equal(t, float64(1), seen["biopath_dp_columns_total"])
	require.Equal(t, float64(1), seen["biopath_explosion_guard_trips_total"])
	require.Equal(t, float64(42), seen["biopath_pathway_table_size"])
}

func counterOrGaugeValue(m *dto.Metric) float64 {
	if c := m.GetCounter(); c != nil {
		return c.GetValue()
	}
	if g := m.GetGauge(); g != nil {
		return g.GetValue()
	}
	return 0
}
